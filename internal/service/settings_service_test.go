package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Units(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.settings()

	assert.Equal(t, domain.UnitLb, svc.Units(ctx))

	u, err := svc.ToggleUnits(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitKg, u)
	assert.Equal(t, domain.UnitKg, env.reload(t).Units)

	require.NoError(t, svc.SetUnits(ctx, domain.UnitLb))
	assert.Equal(t, domain.UnitLb, svc.Units(ctx))

	assert.Error(t, svc.SetUnits(ctx, domain.UnitSystem("stone")))
	assert.Equal(t, domain.UnitLb, svc.Units(ctx))
}
