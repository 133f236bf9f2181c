package sqlexpr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
)

var _ = Describe("ClassifySecurity", func() {
	DescribeTable("classifies capability strings",
		func(caps, expected string) {
			Expect(sqlexpr.ClassifySecurity(caps)).To(Equal(expected))
		},
		Entry("empty", "", sqlexpr.SecurityOpen),
		Entry("blank", "   ", sqlexpr.SecurityOpen),
		Entry("ESS marker only", "[ESS]", sqlexpr.SecurityOpen),
		Entry("ESS and IBSS markers", "[IBSS][ESS]", sqlexpr.SecurityOpen),
		Entry("WEP wins over WPA", "[WEP][WPA]", sqlexpr.SecurityWEP),
		Entry("OWE transition", "[RSN-OWE-CCMP][ESS]", sqlexpr.SecurityWPA3OWE),
		Entry("SAE", "RSN-SAE", sqlexpr.SecurityWPA3SAE),
		Entry("WPA3 enterprise", "[WPA3-EAP-SUITE-B-192][ESS]", sqlexpr.SecurityWPA3Enterprise),
		Entry("WPA3 personal", "[WPA3-PSK][ESS]", sqlexpr.SecurityWPA3),
		Entry("WPA2 enterprise", "[WPA2-EAP-CCMP][ESS]", sqlexpr.SecurityWPA2Enterprise),
		Entry("RSN MGT", "[RSN-MGT-CCMP]", sqlexpr.SecurityWPA2Enterprise),
		Entry("WPA2 personal", "WPA2-PSK-CCMP][ESS]", sqlexpr.SecurityWPA2),
		Entry("WPA2 lower case", "[wpa2-psk-ccmp]", sqlexpr.SecurityWPA2),
		Entry("legacy WPA", "[WPA-PSK-TKIP][ESS]", sqlexpr.SecurityWPA),
		Entry("WPS only", "[WPS][ESS]", sqlexpr.SecurityWPS),
		Entry("cipher only", "[CCMP]", sqlexpr.SecurityWPA2),
		Entry("unrecognized", "[BLE]", sqlexpr.SecurityUnknown),
	)

	// Given a value that is already a security class, as on the explorer view
	// When it is classified again
	// Then the class should come back unchanged
	It("should keep every class label", func() {
		for _, class := range sqlexpr.SecurityClasses {
			Expect(sqlexpr.ClassifySecurity(class)).To(Equal(class), "class %s", class)
		}
	})

	DescribeTable("stored class labels",
		func(stored, expected string) {
			Expect(sqlexpr.ClassifySecurity(stored)).To(Equal(expected))
		},
		Entry("lower case open", "open", sqlexpr.SecurityOpen),
		Entry("padded WPA2-E", " WPA2-E ", sqlexpr.SecurityWPA2Enterprise),
		Entry("WPA3-SAE", "WPA3-SAE", sqlexpr.SecurityWPA3SAE),
		Entry("WPA3-OWE", "wpa3-owe", sqlexpr.SecurityWPA3OWE),
		Entry("unknown", "UNKNOWN", sqlexpr.SecurityUnknown),
	)
})

var _ = Describe("ChannelFromFrequency", func() {
	DescribeTable("derives channels",
		func(mhz, channel int, ok bool) {
			c, found := sqlexpr.ChannelFromFrequency(mhz)
			Expect(found).To(Equal(ok))
			Expect(c).To(Equal(channel))
		},
		Entry("channel 1", 2412, 1, true),
		Entry("channel 6", 2437, 6, true),
		Entry("channel 14", 2484, 14, true),
		Entry("channel 36", 5180, 36, true),
		Entry("channel 165", 5825, 165, true),
		Entry("6GHz start", 5925, 0, true),
		Entry("6GHz channel 1", 5930, 1, true),
		Entry("below 2.4GHz", 2400, 0, false),
		Entry("cellular", 1900, 0, false),
	)
})

var _ = Describe("InferRadioType", func() {
	DescribeTable("infers radio types",
		func(stored string, mhz int, caps, expected string) {
			Expect(sqlexpr.InferRadioType(stored, mhz, caps)).To(Equal(expected))
		},
		Entry("stored type wins", "l", 2437, "", sqlexpr.RadioCellular),
		Entry("2.4GHz frequency", "", 2437, "[BLE]", sqlexpr.RadioWiFi),
		Entry("5GHz frequency", "", 5180, "", sqlexpr.RadioWiFi),
		Entry("6GHz frequency", "", 6000, "", sqlexpr.RadioWiFi),
		Entry("BLE capability", "", 0, "[BTLE]", sqlexpr.RadioBLE),
		Entry("Bluetooth capability", "", 0, "Bluetooth Classic", sqlexpr.RadioBluetooth),
		Entry("LTE capability", "", 0, "LTE;310260", sqlexpr.RadioCellular),
		Entry("nothing known", "", 0, "", sqlexpr.RadioUnknown),
	)
})

var _ = Describe("Threat", func() {
	Context("BlendThreatScore", func() {
		It("should return the rule score when blending is off", func() {
			Expect(sqlexpr.BlendThreatScore(sqlexpr.ThreatInputs{RuleScore: 70, MLScore: 10, MLWeight: 0.5})).To(Equal(70.0))
		})

		It("should blend rule and ML scores by weight", func() {
			score := sqlexpr.BlendThreatScore(sqlexpr.ThreatInputs{RuleScore: 80, MLScore: 40, MLWeight: 0.25, MLBlending: true})
			Expect(score).To(BeNumerically("~", 70.0, 1e-9))
		})
	})

	DescribeTable("ThreatLevel",
		func(score float64, tag, stored, expected string) {
			Expect(sqlexpr.ThreatLevel(score, tag, stored)).To(Equal(expected))
		},
		Entry("critical", 85.0, "", "", sqlexpr.ThreatCritical),
		Entry("high boundary", 60.0, "", "", sqlexpr.ThreatHigh),
		Entry("medium", 45.0, "", "", sqlexpr.ThreatMedium),
		Entry("low", 20.0, "", "", sqlexpr.ThreatLow),
		Entry("none", 19.9, "", "", sqlexpr.ThreatNone),
		Entry("false positive overrides score", 95.0, "FALSE_POSITIVE", "", sqlexpr.ThreatNone),
		Entry("investigate keeps stored level", 10.0, "INVESTIGATE", "HIGH", sqlexpr.ThreatHigh),
		Entry("investigate without stored level", 65.0, "investigate", "", sqlexpr.ThreatHigh),
	)
})

var _ = Describe("NormalizeOUI", func() {
	It("should accept colon separated prefixes", func() {
		oui, ok := sqlexpr.NormalizeOUI("00:1a:2B")
		Expect(ok).To(BeTrue())
		Expect(oui).To(Equal("001A2B"))
	})

	It("should reject vendor names", func() {
		_, ok := sqlexpr.NormalizeOUI("Cisco")
		Expect(ok).To(BeFalse())
	})
})
