package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBeginBeforeConnect(t *testing.T) {
	c := NewClient(Config{}, zap.NewNop())

	_, err := c.Begin(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewClient(Config{}, zap.NewNop())

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.Nil(t, c.DB())
}

func TestStaticHandle(t *testing.T) {
	raw, _, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	db := sqlx.NewDb(raw, "mysql")
	assert.Same(t, db, Static(db).DB())
}
