package prep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSites(t *testing.T) {
	fp := writeTemp(t, "sites.geojson", `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,0.5]},"properties":{"Sites":"clear creek u","Basin":"clear_ck"}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[25,0.5]},"properties":{}}]}`)

	sites, err := ReadSites(fp)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	require.Equal(t, "clear_creek_u", sites[0].Name) // spaces replaced
	require.Equal(t, "clear_ck", sites[0].Props["Basin"])
	require.Equal(t, 1., sites[0].Pt[0])

	require.Equal(t, "site1", sites[1].Name) // fallback name
}

func TestReadSites_NotAPoint(t *testing.T) {
	fp := writeTemp(t, "sites.geojson", `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{"Sites":"bad"}}]}`)

	_, err := ReadSites(fp)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
}
