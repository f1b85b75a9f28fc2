package metrics_test

import (
	"strings"
	"testing"

	"github.com/mergington/activities/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

		Convey("Then construction should register all metrics without panicking", func() {
			So(manager, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)

			names := make([]string, 0, len(families))
			for _, f := range families {
				names = append(names, f.GetName())
			}
			joined := strings.Join(names, ",")
			So(joined, ShouldContainSubstring, "mergington_activities_signups_total")
			So(joined, ShouldContainSubstring, "mergington_activities_participants_total")
		})

		Convey("And registering twice on the same registry should panic", func() {
			So(func() {
				metrics.NewManager(metrics.WithPrometheusRegistry(registry))
			}, ShouldPanic)
		})
	})

	Convey("Given a manager with custom namespace and subsystem", t, func() {
		registry := prometheus.NewRegistry()
		metrics.NewManager(
			metrics.WithPrometheusRegistry(registry),
			metrics.WithNamespace("school"),
			metrics.WithSubsystem("signups"),
		)

		Convey("Then metric names should carry them", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			for _, f := range families {
				So(f.GetName(), ShouldStartWith, "school_signups_")
			}
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("Then the domain helpers should not panic", func() {
			So(metrics.RecordSignup, ShouldNotPanic)
			So(metrics.RecordUnregistration, ShouldNotPanic)
			So(metrics.RecordSignupConflict, ShouldNotPanic)
			So(metrics.RecordUnknownActivity, ShouldNotPanic)
			So(func() { metrics.UpdateActivityCount(9) }, ShouldNotPanic)
			So(func() { metrics.UpdateParticipantCount(15) }, ShouldNotPanic)
		})

		Convey("Then the HTTP helpers should not panic", func() {
			So(func() { metrics.RecordHTTPRequest("activities", "GET", "200") }, ShouldNotPanic)
			So(func() { metrics.RecordHTTPRequestDuration("activities", "GET", "200", 1.5) }, ShouldNotPanic)
			So(func() { metrics.RecordErrorByEndpoint("signup", "POST", "not_found") }, ShouldNotPanic)
			So(func() { metrics.RecordErrorByType("not_found", "medium") }, ShouldNotPanic)
			So(func() { metrics.RecordErrorLatency("http", "not_found", 0.4) }, ShouldNotPanic)
		})

		Convey("Then the system helpers should not panic", func() {
			So(func() { metrics.UpdateSystemMemoryUsage(1 << 20) }, ShouldNotPanic)
			So(func() { metrics.UpdateSystemGoroutineCount(12) }, ShouldNotPanic)
			So(func() { metrics.RecordSystemGCPauseTime(0.25) }, ShouldNotPanic)
		})

		Convey("Then the registry should expose recorded series", func() {
			metrics.RecordSignup()
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
