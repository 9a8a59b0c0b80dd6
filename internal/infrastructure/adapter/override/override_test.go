package override

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/logcat/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/logcat/mocks/port/persistence"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "log.tag.xLogLib", Key("xLogLib"))

	tag, ok := TagOf("log.tag.xLogLib")
	assert.True(t, ok)
	assert.Equal(t, "xLogLib", tag)

	for _, key := range []string{"log.tag.", "log.level", "LOG_TAG_X"} {
		_, ok := TagOf(key)
		assert.False(t, ok, key)
	}
}

func TestMapSource(t *testing.T) {
	s := NewMapSource(map[string]entity.Priority{"xLogLib": entity.Debug})

	p, ok := s.Lookup("xLogLib")
	assert.True(t, ok)
	assert.Equal(t, entity.Debug, p)

	require.NoError(t, s.Set("other", entity.Suppress))
	p, ok = s.Lookup("other")
	assert.True(t, ok)
	assert.Equal(t, entity.Suppress, p)

	assert.ErrorIs(t, s.Set("", entity.Info), errs.ErrInvalidTag)

	require.NoError(t, s.Delete("other"))
	_, ok = s.Lookup("other")
	assert.False(t, ok)
	assert.ErrorIs(t, s.Delete("other"), errs.ErrOverrideNotFound)

	assert.Equal(t, map[string]entity.Priority{"xLogLib": entity.Debug}, s.Snapshot())
}

func TestChainSource(t *testing.T) {
	first := mockcore.NewMockOverrideSource(t)
	second := mockcore.NewMockOverrideSource(t)

	first.EXPECT().Lookup("a").Return(entity.Error, true).Once()
	first.EXPECT().Lookup("b").Return(0, false).Once()
	second.EXPECT().Lookup("b").Return(entity.Verbose, true).Once()
	first.EXPECT().Lookup("c").Return(0, false).Once()
	second.EXPECT().Lookup("c").Return(0, false).Once()

	chain := NewChainSource(first, nil, second)
	require.Len(t, chain, 2)

	p, ok := chain.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, entity.Error, p)

	p, ok = chain.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, entity.Verbose, p)

	_, ok = chain.Lookup("c")
	assert.False(t, ok)
}

func writeProperties(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestPropertyFileSource(t *testing.T) {
	t.Run("Reads log.tag keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logcat.properties")
		writeProperties(t, path, "# levels\nlog.tag.xLogLib=DEBUG\nlog.tag.Noisy=suppress\nunrelated=1\n")

		s, err := NewPropertyFileSource(path, nil)
		require.NoError(t, err)

		p, ok := s.Lookup("xLogLib")
		assert.True(t, ok)
		assert.Equal(t, entity.Debug, p)

		p, ok = s.Lookup("Noisy")
		assert.True(t, ok)
		assert.Equal(t, entity.Suppress, p)

		_, ok = s.Lookup("unrelated")
		assert.False(t, ok)
		assert.Equal(t, path, s.Path())
	})

	t.Run("Missing file has no overrides", func(t *testing.T) {
		s, err := NewPropertyFileSource(filepath.Join(t.TempDir(), "absent.properties"), nil)
		require.NoError(t, err)
		_, ok := s.Lookup("xLogLib")
		assert.False(t, ok)
	})

	t.Run("Invalid level is reported and skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logcat.properties")
		writeProperties(t, path, "log.tag.xLogLib=LOUD\nlog.tag.Ok=WARN\n")

		_, err := NewPropertyFileSource(path, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidPriority)

		writeProperties(t, path, "log.tag.Ok=WARN\n")
		s, err := NewPropertyFileSource(path, nil)
		require.NoError(t, err)

		writeProperties(t, path, "log.tag.xLogLib=LOUD\nlog.tag.Ok=ERROR\n")
		assert.Error(t, s.Reload())
		p, ok := s.Lookup("Ok")
		assert.True(t, ok)
		assert.Equal(t, entity.Error, p)
		_, ok = s.Lookup("xLogLib")
		assert.False(t, ok)
	})

	t.Run("Watch reloads on change", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logcat.properties")
		writeProperties(t, path, "log.tag.xLogLib=INFO\n")

		s, err := NewPropertyFileSource(path, nil)
		require.NoError(t, err)
		require.NoError(t, s.Watch())
		t.Cleanup(func() { assert.NoError(t, s.Close()) })

		writeProperties(t, path, "log.tag.xLogLib=VERBOSE\n")
		assert.Eventually(t, func() bool {
			p, ok := s.Lookup("xLogLib")
			return ok && p == entity.Verbose
		}, 5*time.Second, 20*time.Millisecond)

		require.NoError(t, os.Remove(path))
		assert.Eventually(t, func() bool {
			_, ok := s.Lookup("xLogLib")
			return !ok
		}, 5*time.Second, 20*time.Millisecond)
	})

	t.Run("Close without watch", func(t *testing.T) {
		s, err := NewPropertyFileSource(filepath.Join(t.TempDir(), "x"), nil)
		require.NoError(t, err)
		assert.NoError(t, s.Close())
	})
}

func TestViperSource(t *testing.T) {
	v := viper.New()
	v.Set("log.tag.xLogLib", "debug")
	v.Set("log.tag.Broken", "LOUD")

	s := NewViperSource(v)

	p, ok := s.Lookup("xLogLib")
	assert.True(t, ok)
	assert.Equal(t, entity.Debug, p)

	_, ok = s.Lookup("Broken")
	assert.False(t, ok)

	_, ok = s.Lookup("Missing")
	assert.False(t, ok)

	t.Run("Environment variables", func(t *testing.T) {
		t.Setenv("LOGCAT_LOG_TAG_ENVTAG", "ERROR")

		v := viper.New()
		v.SetEnvPrefix("LOGCAT")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		p, ok := NewViperSource(v).Lookup("EnvTag")
		assert.True(t, ok)
		assert.Equal(t, entity.Error, p)
	})
}

func newTestClock(t *testing.T, ticks chan time.Time) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d core.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()
	clock.EXPECT().After(mock.Anything).
		RunAndReturn(func(core.Duration) <-chan time.Time { return ticks }).Maybe()
	return clock
}

func TestDatabaseSource(t *testing.T) {
	t.Run("Start loads a snapshot and refreshes it", func(t *testing.T) {
		ticks := make(chan time.Time)
		repo := mockpersistence.NewMockTagOverrideRepository(t)
		repo.EXPECT().List(mock.Anything).Return(map[string]entity.Priority{"xLogLib": entity.Warn}, nil).Once()
		repo.EXPECT().List(mock.Anything).Return(map[string]entity.Priority{"xLogLib": entity.Verbose}, nil)

		s := NewDatabaseSource(repo, newTestClock(t, ticks), DatabaseSourceOptions{})
		_, ok := s.Lookup("xLogLib")
		assert.False(t, ok)

		require.NoError(t, s.Start(context.Background()))
		t.Cleanup(s.Stop)

		p, ok := s.Lookup("xLogLib")
		assert.True(t, ok)
		assert.Equal(t, entity.Warn, p)

		ticks <- time.Now()
		assert.Eventually(t, func() bool {
			p, _ := s.Lookup("xLogLib")
			return p == entity.Verbose
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("Refresh failures are reported", func(t *testing.T) {
		failure := errors.New("connection refused")
		repo := mockpersistence.NewMockTagOverrideRepository(t)
		repo.EXPECT().List(mock.Anything).Return(nil, failure).Once()

		var reported error
		s := NewDatabaseSource(repo, newTestClock(t, make(chan time.Time)), DatabaseSourceOptions{
			OnError: func(err error) { reported = err },
		})
		require.NoError(t, s.Start(context.Background()))
		s.Stop()

		assert.ErrorIs(t, reported, failure)
	})

	t.Run("Set and Delete write through", func(t *testing.T) {
		repo := mockpersistence.NewMockTagOverrideRepository(t)
		repo.EXPECT().Upsert(mock.Anything, "xLogLib", entity.Debug).Return(nil).Once()
		repo.EXPECT().Delete(mock.Anything, "xLogLib").Return(nil).Once()
		repo.EXPECT().Delete(mock.Anything, "xLogLib").Return(errs.ErrOverrideNotFound).Once()

		s := NewDatabaseSource(repo, newTestClock(t, nil), DatabaseSourceOptions{})

		require.NoError(t, s.Set("xLogLib", entity.Debug))
		p, ok := s.Lookup("xLogLib")
		assert.True(t, ok)
		assert.Equal(t, entity.Debug, p)

		require.NoError(t, s.Delete("xLogLib"))
		_, ok = s.Lookup("xLogLib")
		assert.False(t, ok)

		assert.ErrorIs(t, s.Delete("xLogLib"), errs.ErrOverrideNotFound)
	})

	t.Run("Refresh does not overwrite a concurrent write", func(t *testing.T) {
		listing := make(chan struct{})
		release := make(chan struct{})
		upserted := make(chan struct{})

		repo := mockpersistence.NewMockTagOverrideRepository(t)
		repo.EXPECT().List(mock.Anything).
			RunAndReturn(func(context.Context) (map[string]entity.Priority, error) {
				close(listing)
				<-release
				return map[string]entity.Priority{"xLogLib": entity.Warn}, nil
			}).Once()
		repo.EXPECT().Upsert(mock.Anything, "xLogLib", entity.Debug).
			RunAndReturn(func(context.Context, string, entity.Priority) error {
				close(upserted)
				return nil
			}).Once()

		s := NewDatabaseSource(repo, newTestClock(t, nil), DatabaseSourceOptions{})

		refreshed := make(chan error, 1)
		go func() { refreshed <- s.Refresh(context.Background()) }()
		<-listing

		written := make(chan error, 1)
		go func() { written <- s.Set("xLogLib", entity.Debug) }()

		select {
		case <-upserted:
		case <-time.After(50 * time.Millisecond):
		}
		close(release)

		require.NoError(t, <-refreshed)
		require.NoError(t, <-written)

		p, ok := s.Lookup("xLogLib")
		assert.True(t, ok)
		assert.Equal(t, entity.Debug, p)
	})

	t.Run("Failed write keeps the snapshot", func(t *testing.T) {
		repo := mockpersistence.NewMockTagOverrideRepository(t)
		repo.EXPECT().Upsert(mock.Anything, "xLogLib", entity.Error).Return(errs.ErrDatabaseConnection).Once()

		s := NewDatabaseSource(repo, newTestClock(t, nil), DatabaseSourceOptions{})
		assert.ErrorIs(t, s.Set("xLogLib", entity.Error), errs.ErrDatabaseConnection)
		_, ok := s.Lookup("xLogLib")
		assert.False(t, ok)
	})
}
