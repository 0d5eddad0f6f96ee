package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	airports := writeFile(t, dir, "airports.csv", "id,name,city,country,iata,icao,lat,lon\n"+
		"1,Alpha,A,X,AAX,AAA,0,0\n"+
		"2,Bravo,B,X,BBX,BBB,0,1\n")
	routes := writeFile(t, dir, "routes.csv", "airline,aid,src,src_id,dst,dst_id\n"+
		"XX,0,AAX,1,BBX,2\n"+
		"XX,0,AAX,NA,BBX,2\n")

	n, err := LoadFiles(nil, airports, routes)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Len())
	assert.Equal(t, 1, n.RouteCount())

	neighbors, ok := n.Neighbors(2)
	require.True(t, ok)
	assert.Equal(t, []int{1}, neighbors)
}

func TestLoadFilesMissingRoutesDegrades(t *testing.T) {
	dir := t.TempDir()
	airports := writeFile(t, dir, "airports.csv", "id,name,city,country,iata,icao,lat,lon\n1,Alpha,A,X,AAX,AAA,0,0\n")

	n, err := LoadFiles(nil, airports, filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	require.NotNil(t, n)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, n.Len())
	assert.Equal(t, 0, n.RouteCount())
}

func TestLoadFilesKeepsRowsBeforeParseError(t *testing.T) {
	dir := t.TempDir()
	airports := writeFile(t, dir, "airports.csv", "id,name,city,country,iata,icao,lat,lon\n"+
		"1,Alpha,A,X,AAX,AAA,0,0\n"+
		"oops,Bravo,B,X,BBX,BBB,0,1\n"+
		"3,Charlie,C,X,CCX,CCC,0,2\n")
	routes := writeFile(t, dir, "routes.csv", "h\n")

	n, err := LoadFiles(nil, airports, routes)
	require.Error(t, err)
	assert.Equal(t, 1, n.Len())
	_, ok := n.Resolve("CCC")
	assert.False(t, ok)
}
