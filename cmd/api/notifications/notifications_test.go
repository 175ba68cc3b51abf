package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestFlowerCreated(t *testing.T) {
	t.Run("notificates the creation of a new flower without errors", func(t *testing.T) {
		is := is.New(t)

		var gotPath string
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		err := ntfy.FlowerCreated(context.Background(), "Rose", 100)
		is.NoErr(err)
		is.Equal(gotPath, "/flower_created")
		is.Equal(gotBody, "New flower created:\nName: Rose\nStock: 100")
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := ntfy.FlowerCreated(ctx, "Rose", 100)
		is.True(errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("disabled notifications are a silent no-op", func(t *testing.T) {
		is := is.New(t)

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		ntfy := NewNtfy(false, server.URL, server.Client())

		err := ntfy.FlowerCreated(context.Background(), "Rose", 100)
		is.NoErr(err)
		is.True(!called)
	})
}

func TestLowStock(t *testing.T) {
	t.Run("notificates a low stock level without errors", func(t *testing.T) {
		is := is.New(t)

		var gotPath string
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		err := ntfy.LowStock(context.Background(), "Orchid", 5)
		is.NoErr(err)
		is.Equal(gotPath, "/low_stock")
		is.Equal(gotBody, "Low stock alert:\nName: Orchid\nStock: 5")
	})

	t.Run("a non 2xx answer from the topic is an error", func(t *testing.T) {
		is := is.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())

		err := ntfy.LowStock(context.Background(), "Orchid", 5)
		is.True(err != nil)
	})
}
