package filters_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/filters"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/util"
)

var _ = Describe("Validate", func() {
	DescribeTable("rssiMin noise floor",
		func(value float64, valid bool) {
			f := models.Filters{RSSIMin: util.Ptr(value)}
			errs := filters.Validate(f, models.EnabledFlags{models.FilterRSSIMin: true})
			if valid {
				Expect(errs).To(BeEmpty())
				return
			}
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Field).To(Equal(models.FilterRSSIMin))
			Expect(errs[0].Message).To(ContainSubstring("noise floor"))
		},
		Entry("at the floor", -95.0, true),
		Entry("below the floor", -96.0, false),
		Entry("strong signal", -30.0, true),
	)

	DescribeTable("threat score range",
		func(value float64, valid bool) {
			f := models.Filters{ThreatScoreMin: util.Ptr(value), ThreatScoreMax: util.Ptr(value)}
			errs := filters.Validate(f, models.EnabledFlags{models.FilterThreatScoreMin: true, models.FilterThreatScoreMax: true})
			if valid {
				Expect(errs).To(BeEmpty())
			} else {
				Expect(errs).To(HaveLen(2))
			}
		},
		Entry("zero", 0.0, true),
		Entry("hundred", 100.0, true),
		Entry("negative", -1.0, false),
		Entry("above hundred", 101.0, false),
	)

	It("should reject rssiMax above zero", func() {
		errs := filters.Validate(models.Filters{RSSIMax: util.Ptr(1.0)}, models.EnabledFlags{models.FilterRSSIMax: true})
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Field).To(Equal(models.FilterRSSIMax))
	})

	It("should reject an inverted rssi range", func() {
		f := models.Filters{RSSIMin: util.Ptr(-50.0), RSSIMax: util.Ptr(-70.0)}
		errs := filters.Validate(f, models.EnabledFlags{models.FilterRSSIMin: true, models.FilterRSSIMax: true})
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Message).To(Equal("rssiMin cannot be greater than rssiMax"))
	})

	It("should reject gps accuracy over 1000 meters", func() {
		errs := filters.Validate(models.Filters{GPSAccuracyMax: util.Ptr(1000.5)}, models.EnabledFlags{models.FilterGPSAccuracyMax: true})
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Message).To(Equal("gpsAccuracyMax cannot exceed 1000 meters"))
	})

	It("should reject stationary confidence outside the unit interval", func() {
		f := models.Filters{StationaryConfidenceMin: util.Ptr(1.2)}
		errs := filters.Validate(f, models.EnabledFlags{models.FilterStationaryConfidenceMin: true})
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Message).To(Equal("stationaryConfidenceMin must be between 0.0 and 1.0"))
	})

	It("should reject inverted channel ranges", func() {
		f := models.Filters{ChannelMin: util.Ptr(11), ChannelMax: util.Ptr(1)}
		errs := filters.Validate(f, models.EnabledFlags{models.FilterChannelMin: true, models.FilterChannelMax: true})
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Message).To(Equal("channelMin cannot be greater than channelMax"))
	})

	It("should reject an absolute timeframe that ends before it starts", func() {
		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		f := models.Filters{Timeframe: &models.Timeframe{Type: models.TimeframeAbsolute, Start: &start, End: &end}}
		errs := filters.Validate(f, models.EnabledFlags{models.FilterTimeframe: true})
		Expect(errs).To(HaveLen(1))
	})

	// Given out of range values whose flags are off
	// When validating
	// Then nothing is reported since disabled filters are never compiled
	It("should ignore disabled and absent filters", func() {
		f := models.Filters{RSSIMin: util.Ptr(-200.0), ThreatScoreMax: util.Ptr(500.0)}
		Expect(filters.Validate(f, models.EnabledFlags{})).To(BeEmpty())
		Expect(filters.Validate(models.Filters{}, models.EnabledFlags{models.FilterRSSIMin: true})).To(BeEmpty())
	})
})
