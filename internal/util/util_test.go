package util_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/util"
)

var _ = Describe("util", func() {
	It("should point at a copy", func() {
		v := 3
		p := util.Ptr(v)
		v = 4

		Expect(*p).To(Equal(3))
	})

	DescribeTable("Round",
		func(in float64, decimals int, want float64) {
			Expect(util.Round(in, decimals)).To(Equal(want))
		},
		Entry("two decimals", 1.23456, 2, 1.23),
		Entry("three decimals", 0.8338, 3, 0.834),
		Entry("no decimals", 2.5, 0, 3.0),
	)

	It("should upper-case and dedupe bssids in order", func() {
		Expect(util.UpperUnique([]string{" aa:bb ", "AA:BB", "", "cc:dd"})).To(Equal([]string{"AA:BB", "CC:DD"}))
		Expect(util.UpperUnique(nil)).To(BeNil())
	})

	DescribeTable("EscapeLike",
		func(in, want string) {
			Expect(util.EscapeLike(in)).To(Equal(want))
		},
		Entry("plain", "cafe", "cafe"),
		Entry("percent", "100%", `100\%`),
		Entry("underscore", "my_net", `my\_net`),
		Entry("backslash first", `a\_`, `a\\\_`),
	)
})
