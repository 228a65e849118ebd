package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActor_CanManageTenant(t *testing.T) {
	tenant := &Tenant{ID: 1, OwnerID: 42}

	tests := []struct {
		name  string
		actor *Actor
		want  bool
	}{
		{name: "owner of tenant", actor: &Actor{UserID: 42, Role: RoleOwner}, want: true},
		{name: "owner of another tenant", actor: &Actor{UserID: 7, Role: RoleOwner}, want: false},
		{name: "developer manages any tenant", actor: &Actor{UserID: 7, Role: RoleDeveloper}, want: true},
		{name: "customer never manages", actor: &Actor{UserID: 42, Role: RoleCustomer}, want: false},
		{name: "nil actor", actor: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanManageTenant(tenant))
		})
	}
}

func TestBookingSource(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, SourceCustomer.Valid())
		assert.True(t, SourceOwner.Valid())
		assert.True(t, SourceBlock.Valid())
		assert.False(t, BookingSource("admin").Valid())
		assert.False(t, BookingSource("").Valid())
	})

	t.Run("trust asymmetry", func(t *testing.T) {
		// Клиентский путь: строгая валидация, уведомления, без актора
		assert.False(t, SourceCustomer.BypassesLeadTime())
		assert.False(t, SourceCustomer.TruncatesLongFields())
		assert.False(t, SourceCustomer.DropsUnknownMenu())
		assert.True(t, SourceCustomer.Notifies())
		assert.False(t, SourceCustomer.RequiresActor())

		// Владельческий путь: мягкая валидация, уведомления, требует актора
		assert.True(t, SourceOwner.BypassesLeadTime())
		assert.True(t, SourceOwner.TruncatesLongFields())
		assert.True(t, SourceOwner.DropsUnknownMenu())
		assert.True(t, SourceOwner.Notifies())
		assert.True(t, SourceOwner.RequiresActor())

		// Блокировка: как владельческий, но без уведомлений
		assert.True(t, SourceBlock.BypassesLeadTime())
		assert.False(t, SourceBlock.Notifies())
		assert.True(t, SourceBlock.RequiresActor())
	})
}

func TestTenant_OwnerNotificationEmail(t *testing.T) {
	override := "shop@notify.example.jp"

	t.Run("override takes precedence", func(t *testing.T) {
		tenant := &Tenant{
			OwnerEmail:    "owner@example.jp",
			Notifications: NotificationSettings{NotificationEmail: &override},
		}
		assert.Equal(t, override, tenant.OwnerNotificationEmail())
	})

	t.Run("falls back to owner email", func(t *testing.T) {
		tenant := &Tenant{OwnerEmail: "owner@example.jp"}
		assert.Equal(t, "owner@example.jp", tenant.OwnerNotificationEmail())
	})

	t.Run("empty override is ignored", func(t *testing.T) {
		empty := ""
		tenant := &Tenant{
			OwnerEmail:    "owner@example.jp",
			Notifications: NotificationSettings{NotificationEmail: &empty},
		}
		assert.Equal(t, "owner@example.jp", tenant.OwnerNotificationEmail())
	})
}
