package notify

import (
	"testing"

	"github.com/google/uuid"
)

func TestHub_DeliversToSubscriber(t *testing.T) {
	hub := NewHub(nil)
	userID := uuid.New()

	ch, cancel := hub.Subscribe(userID)
	defer cancel()

	hub.DataChanged(userID)

	select {
	case <-ch:
	default:
		t.Error("expected a refresh signal")
	}
}

func TestHub_DoesNotBlockOnFullChannel(t *testing.T) {
	hub := NewHub(nil)
	userID := uuid.New()

	_, cancel := hub.Subscribe(userID)
	defer cancel()

	// Repeated signals coalesce instead of blocking the sender.
	hub.DataChanged(userID)
	hub.DataChanged(userID)
	hub.DataChanged(userID)
}

func TestHub_ScopedToUser(t *testing.T) {
	hub := NewHub(nil)
	alice := uuid.New()
	bob := uuid.New()

	ch, cancel := hub.Subscribe(alice)
	defer cancel()

	hub.DataChanged(bob)

	select {
	case <-ch:
		t.Error("signal leaked across users")
	default:
	}
}

func TestHub_CancelRemovesSubscription(t *testing.T) {
	hub := NewHub(nil)
	userID := uuid.New()

	ch, cancel := hub.Subscribe(userID)
	cancel()

	hub.DataChanged(userID)

	select {
	case <-ch:
		t.Error("cancelled subscriber still received a signal")
	default:
	}
}
