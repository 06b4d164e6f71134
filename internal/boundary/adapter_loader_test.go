package boundary

import (
	"io/fs"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nvandessel/liftconf/internal/config"
	"github.com/nvandessel/liftconf/internal/handle"
	"github.com/nvandessel/liftconf/internal/mock"
)

func TestOpen_ReadFailureRaises(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mock.NewMockLoader(ctrl)
	loader.EXPECT().
		LoadFile("/srv/app/.lift.toml").
		Return(nil, &config.Error{Kind: config.ErrReadFailed, Path: "/srv/app/.lift.toml", Err: fs.ErrPermission})

	host := &fakeHost{}
	a := New(host, loader, zerolog.Nop())

	h := a.Open("/srv/app/.lift.toml")
	assert.Equal(t, handle.Null, h)
	require.Len(t, host.thrown, 1)
	assert.Equal(t, DefaultException, host.thrown[0].Class)
	assert.Contains(t, host.thrown[0].Message, "could not read configuration file")
	assert.Contains(t, host.thrown[0].Message, "permission denied")
	assert.Zero(t, a.OpenCount())
}

func TestOpen_NotFoundIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mock.NewMockLoader(ctrl)
	loader.EXPECT().
		LoadFile(gomock.Any()).
		Return(nil, &config.Error{Kind: config.ErrFileNotFound, Path: "missing.toml"}).
		Times(2)

	host := &fakeHost{}
	a := New(host, loader, zerolog.Nop())

	assert.Equal(t, handle.Null, a.Open("missing.toml"))
	assert.Equal(t, handle.Null, a.Open("missing.toml"))
	assert.Empty(t, host.thrown)
}

func TestOpen_OwnsLoadedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec, err := config.LoadFile(writeConfig(t, `build = "make"`))
	require.NoError(t, err)

	loader := mock.NewMockLoader(ctrl)
	loader.EXPECT().LoadFile("a.toml").Return(rec, nil)
	loader.EXPECT().LoadFile("b.toml").Return(rec, nil)

	host := &fakeHost{}
	a := New(host, loader, zerolog.Nop())

	first := a.Open("a.toml")
	second := a.Open("b.toml")
	assert.NotEqual(t, first, second, "every open hands out a new handle")
	assert.Equal(t, 2, a.OpenCount())

	a.Close(first)
	assert.Equal(t, "make", a.GetBuild(second))
	assert.Empty(t, host.thrown)
}
