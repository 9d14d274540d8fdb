package browser

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ford442/supertonic-TTS/domain/entities"
)

func quietSession() *playwrightSession {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &playwrightSession{logger: logger}
}

func TestCloseIsIdempotent(t *testing.T) {
	session := quietSession()

	// Teardown runs at most once; a second Close is a no-op with the same
	// result.
	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
}

func TestSessionRefusesWorkAfterCancellation(t *testing.T) {
	session := quietSession()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Every operation bails before touching the browser, so none of these
	// panic on the unlaunched session.
	err := session.Navigate(ctx, "http://localhost:4173")
	var navErr *entities.NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.ErrorIs(t, err, context.Canceled)

	err = session.WaitVisible(ctx, entities.ButtonNamed("Mirror X"), 5*time.Second)
	var visErr *entities.VisibilityError
	require.ErrorAs(t, err, &visErr)
	assert.Equal(t, entities.ButtonNamed("Mirror X"), visErr.Target)
	assert.ErrorIs(t, err, context.Canceled)

	err = session.Click(ctx, entities.ButtonNamed("Sharpen"))
	var interactionErr *entities.InteractionError
	require.ErrorAs(t, err, &interactionErr)
	assert.ErrorIs(t, err, context.Canceled)

	err = session.Screenshot(ctx, "mixer_ui.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsAlreadyClosed(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Target page, context or browser has been closed", true},
		{"target closed", true},
		{"browser has been closed", true},
		{"websocket: connection closed unexpectedly", false},
		{"could not send message to driver", false},
	}
	for _, tc := range tests {
		t.Run(tc.msg, func(t *testing.T) {
			assert.Equal(t, tc.want, isAlreadyClosed(errors.New(tc.msg)))
		})
	}
}
