package main

import (
	"encoding/json"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"

	geobridge "github.com/geoforge/geobridge"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	geobridge.SetLogger(logger)

	if err := geobridge.SetConfigOption("OGR_CT_FORCE_TRADITIONAL_GIS_ORDER", "YES"); err != nil {
		logger.Fatal().Err(err).Msg("set config option")
	}

	src, err := geobridge.NewSpatialRefFromEPSG(4326)
	if err != nil {
		logger.Fatal().Err(err).Msg("source reference")
	}
	defer src.Close()

	dst, err := geobridge.NewSpatialRefFromEPSG(3035)
	if err != nil {
		logger.Fatal().Err(err).Msg("destination reference")
	}
	defer dst.Close()

	tr, err := geobridge.NewTransform(src, dst)
	if err != nil {
		logger.Fatal().Err(err).Msg("transform")
	}
	defer tr.Close()
	logger.Info().Str("from", tr.From()).Str("to", tr.To()).Msg("transform ready")

	engine := geobridge.NewEngine()
	defer engine.Close()
	logger.Info().Str("geos", geobridge.GEOSVersion()).Msg("geometry engine ready")

	// A rough box around the Aegean, WGS84 lon/lat. The rings are left open
	// on purpose; the bridge closes them.
	aegean := orb.Polygon{
		{{23.43, 37.58}, {23.43, 40.0}, {26.50, 40.0}, {26.50, 37.58}},
	}

	g, err := geobridge.ReprojectGeometry(engine, tr, aegean)
	if err != nil {
		logger.Fatal().Err(err).Msg("reproject")
	}
	defer g.Close()

	if !g.IsValid() {
		logger.Fatal().Msg("reprojected polygon is not valid")
	}

	projected, err := engine.Decode(g)
	if err != nil {
		logger.Fatal().Err(err).Msg("decode")
	}

	f := geojson.NewFeature(projected)
	f.Properties = geojson.Properties{
		"name": "aegean box",
		"crs":  tr.To(),
	}
	out, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("marshal")
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
