package emailgateway

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("emailgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("emailgateway client: invalid response")

	// ErrSendRejected возвращается, когда шлюз отклонил отправку письма
	ErrSendRejected = errors.New("emailgateway client: send rejected")
)
