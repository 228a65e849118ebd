package smsgateway

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("smsgateway client: invalid response")

	// ErrSendRejected возвращается, когда шлюз отклонил отправку сообщения
	ErrSendRejected = errors.New("smsgateway client: send rejected")
)
