package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitlog/summits-web/internal/domain/route"
)

func TestRouteURL(t *testing.T) {
	routes, err := route.Default()
	require.NoError(t, err)

	got, err := routeURL(routes, "user", "user_id", int64(7))
	require.NoError(t, err)
	assert.Equal(t, "/user/7", got)

	got, err = routeURL(routes, "climb", "ridge_id", "caucasus", "summit_id", "elbrus")
	require.NoError(t, err)
	assert.Equal(t, "/caucasus/elbrus/climb", got)

	_, err = routeURL(routes, "user", "user_id")
	assert.Error(t, err, "odd argument count")

	_, err = routeURL(routes, "user", 1, 2)
	assert.Error(t, err, "non-string name")

	_, err = routeURL(routes, "user")
	assert.ErrorIs(t, err, route.ErrMissingParam)
}
