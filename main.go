package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/huris/RayTracing/pkg/core"
	"github.com/huris/RayTracing/pkg/geometry"
)

// ProbeConfig describes one sphere and one ray to intersect
type ProbeConfig struct {
	Center    core.Vec3
	Radius    float64
	Origin    core.Vec3
	Direction core.Vec3
	Time      float64
	Range     core.Interval
}

// vecFlag parses "x,y,z" into a vector
type vecFlag struct {
	v *core.Vec3
}

func (f vecFlag) String() string {
	if f.v == nil {
		return ""
	}
	return formatVec(*f.v)
}

func (f vecFlag) Set(s string) error {
	v, err := parseVec(s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

func parseVec(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("vector %q: expected x,y,z", s)
	}
	var v core.Vec3
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("vector %q component %d: %w", s, i, err)
		}
		v[i] = value
	}
	return v, nil
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

// parseFlags builds a probe configuration from command line arguments.
// Defaults describe a sphere straight ahead of a camera at the origin.
func parseFlags(args []string, output io.Writer) (*ProbeConfig, error) {
	cfg := &ProbeConfig{
		Center:    core.NewVec3(0, 0, -1),
		Radius:    0.5,
		Direction: core.NewVec3(0, 0, -1),
	}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(vecFlag{&cfg.Center}, "center", "Sphere center as x,y,z")
	fs.Float64Var(&cfg.Radius, "radius", cfg.Radius, "Sphere radius (negative for hollow spheres)")
	fs.Var(vecFlag{&cfg.Origin}, "origin", "Ray origin as x,y,z")
	fs.Var(vecFlag{&cfg.Direction}, "direction", "Ray direction as x,y,z")
	fs.Float64Var(&cfg.Time, "time", 0, "Ray time")
	tMin := fs.Float64("tmin", 0.001, "Smallest accepted ray parameter")
	tMax := fs.Float64("tmax", math.Inf(1), "Largest accepted ray parameter")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *help {
		fmt.Fprintln(output, "Ray/sphere probe")
		fmt.Fprintln(output, "Usage: raytracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		return nil, flag.ErrHelp
	}

	if cfg.Radius == 0 {
		return nil, errors.New("radius must be non-zero")
	}
	if core.LengthSquared(cfg.Direction) == 0 {
		return nil, errors.New("direction must be non-zero")
	}
	if *tMin > *tMax {
		return nil, fmt.Errorf("empty interval [%g, %g]", *tMin, *tMax)
	}
	cfg.Range = core.NewInterval(*tMin, *tMax)
	return cfg, nil
}

// probe intersects the configured ray with the configured sphere and reports the outcome
func probe(cfg *ProbeConfig, logger core.Logger) (geometry.HitRecord, bool) {
	var hittable geometry.Hittable = geometry.NewSphere(cfg.Center, cfg.Radius, nil)
	ray := core.NewRayAtTime(cfg.Origin, cfg.Direction, cfg.Time)

	logger.Printf("Sphere: center=(%s) radius=%g", formatVec(cfg.Center), cfg.Radius)
	logger.Printf("Ray: origin=(%s) direction=(%s) time=%g", formatVec(ray.Origin), formatVec(ray.Direction), ray.Time)
	logger.Printf("Interval: [%g, %g]", cfg.Range.Min, cfg.Range.Max)

	var rec geometry.HitRecord
	if !hittable.Hit(ray, cfg.Range.Min, cfg.Range.Max, &rec) {
		logger.Printf("Result: miss")
		return rec, false
	}

	logger.Printf("Result: hit t=%g point=(%s) normal=(%s) front_face=%t",
		rec.T, formatVec(rec.Point), formatVec(rec.Normal), rec.FrontFace)
	return rec, true
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", 0)
	if _, hit := probe(cfg, logger); !hit {
		os.Exit(1)
	}
}
