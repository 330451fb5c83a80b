package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct {
	cameras []domain.Camera
	err     error
}

func (l staticLoader) List(context.Context) ([]domain.Camera, error) {
	return l.cameras, l.err
}

var testCameras = []domain.Camera{
	{ID: 1, Name: "Canon EOS R5", Specs: "DSLR Camera", Price: 1000},
	{ID: 2, Name: "Sony A7 IV", Specs: "Mirrorless Camera", Price: 1500},
	{ID: 3, Name: "Fuji GFX 100", Specs: "Medium Format Camera", Price: 3000},
}

func newTestShell(loader storefront.CatalogLoader, out *bytes.Buffer) *Shell {
	clock := func() time.Time { return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC) }
	workflow := storefront.NewWorkflow(nil, nil, storefront.WithClock(clock))
	return NewShell(workflow, loader, nil, out)
}

func TestShell_BookingFlow(t *testing.T) {
	var out bytes.Buffer
	shell := newTestShell(staticLoader{cameras: testCameras}, &out)

	script := strings.Join([]string{
		"select 3",
		"start 2025-01-10",
		"end 2025-01-12",
		"accessories 2,1",
		"contact Ivan 9123456789 call after six",
		"submit",
		"quit",
	}, "\n")

	require.NoError(t, shell.Run(context.Background(), strings.NewReader(script)))

	text := out.String()
	assert.Contains(t, text, "3. Fuji GFX 100 (Medium Format Camera) 3 000 ₽/day")
	assert.Contains(t, text, "Total: 7 600 ₽")
	assert.Contains(t, text, "+7 (912) 345-67-89")
	assert.NotNil(t, shell.session.Confirmation)

	require.NoError(t, shell.Exec(context.Background(), "close"))
	assert.Nil(t, shell.session.Confirmation)
	assert.Equal(t, storefront.ViewListing, shell.session.View)
	assert.Equal(t, storefront.Form{}, shell.session.Form)
}

func TestShell_Errors(t *testing.T) {
	var out bytes.Buffer
	shell := newTestShell(staticLoader{cameras: testCameras}, &out)
	ctx := context.Background()
	require.NoError(t, shell.workflow.LoadCatalog(ctx, shell.session, shell.loader))

	assert.ErrorIs(t, shell.Exec(ctx, "select 99"), domain.ErrCameraNotFound)
	assert.ErrorIs(t, shell.Exec(ctx, "start 2025-01-09"), domain.ErrDateBeforeMinimum)
	assert.ErrorIs(t, shell.Exec(ctx, "start 10.01.2025"), domain.ErrInvalidDate)
	assert.ErrorIs(t, shell.Exec(ctx, "accessories 42"), domain.ErrUnknownAccessory)
	assert.ErrorIs(t, shell.Exec(ctx, "submit"), domain.ErrIncompleteForm)
	assert.ErrorContains(t, shell.Exec(ctx, "fly"), "unknown command")
	assert.ErrorIs(t, shell.Exec(ctx, "quit"), errQuit)
	assert.NoError(t, shell.Exec(ctx, "   "))
}

func TestShell_CatalogUnavailable(t *testing.T) {
	var out bytes.Buffer
	shell := newTestShell(staticLoader{err: errors.New("connection refused")}, &out)

	require.NoError(t, shell.Run(context.Background(), strings.NewReader("list\n")))

	assert.Contains(t, out.String(), "Failed to load cameras. Please try again later.")
}

func TestIDList(t *testing.T) {
	ids, err := idList([]string{"1,", "3", "2"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, ids)

	ids, err = idList([]string{"none"})
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = idList([]string{"x"})
	assert.Error(t, err)
}

func TestCatalogCmd(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "camera-data.json")
	require.NoError(t, os.WriteFile(data, []byte(`[{"name":"Canon EOS R5","image":"r5.jpg"},{"name":"Sony A7 IV","image":"a7.jpg"}]`), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog:\n  file_path: "+data+"\n"), 0o644))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"catalog", "--config", cfgPath, "--api", ""})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "1\tCanon EOS R5\tDSLR Camera\t1 000 ₽\timages/r5.jpg")
	assert.Contains(t, out.String(), "2\tSony A7 IV\tMirrorless Camera\t1 500 ₽\timages/a7.jpg")
}
