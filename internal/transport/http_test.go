package transport

import (
	"net/http"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Options{})

	if client.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.Timeout, DefaultTimeout)
	}

	tr, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport = %T, want *http.Transport", client.Transport)
	}
	if !tr.DisableKeepAlives {
		t.Error("keep-alives should be disabled")
	}
	if tr.Proxy != nil {
		t.Error("proxy should not be used for LAN devices")
	}
}

func TestNewClient_CustomTimeout(t *testing.T) {
	client := NewClient(Options{Timeout: 750 * time.Millisecond})

	if client.Timeout != 750*time.Millisecond {
		t.Errorf("Timeout = %v, want 750ms", client.Timeout)
	}
}
