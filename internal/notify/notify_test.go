package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronois/avrora/internal/domain"
)

type posted struct {
	texts []string
}

func (p *posted) Notify(_ context.Context, text string, _ domain.Role) {
	p.texts = append(p.texts, text)
}

func TestDesktop_Notify(t *testing.T) {
	next := &posted{}
	var shown []string
	d := New(next, true, nil)
	d.send = func(title, message, _ string) error {
		shown = append(shown, title+"|"+message)
		return nil
	}

	d.Notify(context.Background(), "Нагадую, Олег: чай", domain.RoleProgram)
	d.Notify(context.Background(), "", domain.RoleProgram)

	require.Equal(t, []string{"Нагадую, Олег: чай", ""}, next.texts)
	require.Equal(t, []string{"AVRORA|Нагадую, Олег: чай"}, shown)
}

func TestDesktop_Disabled(t *testing.T) {
	next := &posted{}
	d := New(next, false, nil)
	d.send = func(string, string, string) error {
		t.Fatal("notification shown while disabled")
		return nil
	}

	d.Notify(context.Background(), "будильник", domain.RoleProgram)
	require.Equal(t, []string{"будильник"}, next.texts)
}

func TestDesktop_SendFailureIgnored(t *testing.T) {
	d := New(nil, true, nil)
	d.send = func(string, string, string) error { return errors.New("no dbus") }

	require.NotPanics(t, func() { d.Notify(context.Background(), "текст", domain.RoleProgram) })
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("я", 120)

	require.Equal(t, "коротко", truncate("коротко", 100))
	require.Equal(t, strings.Repeat("я", 100)+"...", truncate(long, 100))
}
