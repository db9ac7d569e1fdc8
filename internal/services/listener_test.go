package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/clipkeys/internal/domain"
	"github.com/renato0307/clipkeys/internal/ports"
	portsmocks "github.com/renato0307/clipkeys/internal/ports/mocks"
)

func TestListenerService_BindingsSkipModifierOnly(t *testing.T) {
	repo := portsmocks.NewMockAssignmentRepository(t)
	repo.EXPECT().LoadAssignments(mock.Anything).Return(map[string]string{
		"copy":  "CTRL",
		"paste": "",
	}, nil).Once()

	registrar := portsmocks.NewMockHotkeyRegistrar(t)
	registrar.EXPECT().Supports(mock.Anything).Return(nil)

	service := NewListenerService(NewPreferencesService(repo, nil, domain.PlatformOther), registrar)
	bindings, err := service.Bindings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"clear_history", "paste_plain", "show_history", "toggle_capture"}, bindingActions(bindings))
}

func TestListenerService_BindingsSkipUnsupportedKeys(t *testing.T) {
	repo := portsmocks.NewMockAssignmentRepository(t)
	repo.EXPECT().LoadAssignments(mock.Anything).Return(map[string]string{
		"paste": "CTRL + HOME",
	}, nil).Once()
	registrar := portsmocks.NewMockHotkeyRegistrar(t)
	registrar.EXPECT().Supports(mock.Anything).RunAndReturn(func(chord domain.Chord) error {
		if chord.Key() == "HOME" {
			return errors.New("key 'home' cannot be registered globally")
		}
		return nil
	})

	service := NewListenerService(NewPreferencesService(repo, nil, domain.PlatformOther), registrar)
	bindings, err := service.Bindings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"clear_history", "copy", "paste_plain", "show_history", "toggle_capture"}, bindingActions(bindings))
}

func TestListenerService_ListenRegistersRemainingHotkeys(t *testing.T) {
	repo := portsmocks.NewMockAssignmentRepository(t)
	repo.EXPECT().LoadAssignments(mock.Anything).Return(map[string]string{
		"copy": "SHIFT + F13",
	}, nil).Once()
	registrar := portsmocks.NewMockHotkeyRegistrar(t)
	registrar.EXPECT().Supports(mock.Anything).RunAndReturn(func(chord domain.Chord) error {
		if chord.Key() == "F13" {
			return errors.New("key 'f13' cannot be registered globally")
		}
		return nil
	})
	registrar.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, bindings []ports.HotkeyBinding, onFire func(string)) error {
			assert.NotContains(t, bindingActions(bindings), "copy")
			assert.Len(t, bindings, len(domain.Actions)-1)
			return nil
		}).Once()

	service := NewListenerService(NewPreferencesService(repo, nil, domain.PlatformOther), registrar)

	assert.NoError(t, service.Listen(context.Background(), nil))
}

func bindingActions(bindings []ports.HotkeyBinding) []string {
	var actions []string
	for _, b := range bindings {
		actions = append(actions, b.Action)
	}
	return actions
}

func TestListenerService_ListenReportsActivations(t *testing.T) {
	repo := portsmocks.NewMockAssignmentRepository(t)
	repo.EXPECT().LoadAssignments(mock.Anything).Return(nil, nil).Once()
	registrar := portsmocks.NewMockHotkeyRegistrar(t)
	registrar.EXPECT().Supports(mock.Anything).Return(nil)
	registrar.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, bindings []ports.HotkeyBinding, onFire func(string)) error {
			assert.Len(t, bindings, len(domain.Actions))
			onFire("paste")
			onFire("copy")
			return nil
		}).Once()

	service := NewListenerService(NewPreferencesService(repo, nil, domain.PlatformOther), registrar)
	var fired []string
	err := service.Listen(context.Background(), func(action string) {
		fired = append(fired, action)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"paste", "copy"}, fired)
}

func TestListenerService_RegistrarError(t *testing.T) {
	repo := portsmocks.NewMockAssignmentRepository(t)
	repo.EXPECT().LoadAssignments(mock.Anything).Return(nil, nil).Once()
	registrar := portsmocks.NewMockHotkeyRegistrar(t)
	registrar.EXPECT().Supports(mock.Anything).Return(nil)
	registrar.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("hotkey already grabbed")).Once()

	service := NewListenerService(NewPreferencesService(repo, nil, domain.PlatformOther), registrar)
	err := service.Listen(context.Background(), nil)

	assert.ErrorContains(t, err, "hotkey already grabbed")
}
