package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	challanapp "github.com/zumech/backend/internal/application/challan"
	"github.com/zumech/backend/internal/infrastructure/auth"
	"github.com/zumech/backend/internal/infrastructure/config"
	"github.com/zumech/backend/internal/infrastructure/persistence"
)

func testApp(cfg *config.Config) (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &app{
		out: out,
		loadConfig: func(string) (*config.Config, error) {
			return cfg, nil
		},
	}, out
}

func execute(a *app, args ...string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestRootCmd_Subcommands(t *testing.T) {
	a, _ := testApp(&config.Config{})
	root := newRootCmd(a)

	for _, path := range [][]string{{"token", "issue"}, {"companies"}, {"render"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRootCmd_ConfigError(t *testing.T) {
	a := &app{
		out: &bytes.Buffer{},
		loadConfig: func(string) (*config.Config, error) {
			return nil, errors.New("no such file")
		},
	}

	err := execute(a, "companies")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load configuration")
}

func TestTokenIssue(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{
		Enabled:    true,
		Secret:     "test-secret-with-enough-length",
		Issuer:     "zumech",
		Expiration: time.Hour,
	}}

	t.Run("prints a token the guard accepts", func(t *testing.T) {
		a, out := testApp(cfg)

		require.NoError(t, execute(a, "token", "issue", "--subject", "whatsapp-bridge", "--ttl", "2h"))

		svc, err := auth.NewTokenService(cfg.JWT)
		require.NoError(t, err)
		claims, err := svc.Validate(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Equal(t, "whatsapp-bridge", claims.Subject)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("json output", func(t *testing.T) {
		a, out := testApp(cfg)

		require.NoError(t, execute(a, "token", "issue", "--subject", "ops", "--json"))

		var tok auth.IssuedToken
		require.NoError(t, json.Unmarshal(out.Bytes(), &tok))
		assert.Equal(t, "ops", tok.Subject)
		assert.NotEmpty(t, tok.Token)
		assert.NotEmpty(t, tok.ID)
	})

	t.Run("subject is required", func(t *testing.T) {
		a, _ := testApp(cfg)
		assert.Error(t, execute(a, "token", "issue"))
	})

	t.Run("missing secret", func(t *testing.T) {
		a, _ := testApp(&config.Config{})
		err := execute(a, "token", "issue", "--subject", "ops")
		assert.ErrorIs(t, err, auth.ErrMissingSecret)
	})
}

func TestCompanies(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "admin.db"),
	}}

	db, err := persistence.NewDatabase(&cfg.Database)
	require.NoError(t, err)
	svc := challanapp.NewService(persistence.NewGormChallanRepository(db.DB))
	for _, industry := range []string{"Beta Forge", "Acme Steel", " Beta Forge "} {
		_, err := svc.Create(context.Background(), challanapp.CreateChallanRequest{
			Industry: industry,
			Description: []challanapp.LineItemDTO{
				{Qty: "1", Description: "Flange"},
			},
		})
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	a, out := testApp(cfg)
	require.NoError(t, execute(a, "companies"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{"Acme Steel", "Beta Forge"}, lines)
}

func TestRender_RejectsUnknownKind(t *testing.T) {
	a, _ := testApp(&config.Config{})

	err := execute(a, "render", "bill_summary", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document kind")

	assert.Error(t, execute(a, "render", "challan"))
}
