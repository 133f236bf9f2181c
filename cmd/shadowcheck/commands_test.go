package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}

var _ = Describe("CLI", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Context("explain", func() {
		// Given a payload with one enabled network filter
		// When explain runs for the count shape
		// Then the compiled SQL and the applied filter are printed
		It("should print the compiled statement", func() {
			// Arrange
			payload := writeFile(dir, "payload.json", `{"filters": {"ssid": "cafe"}, "enabled": {"ssid": true}}`)
			var out bytes.Buffer
			root := NewRootCommand()
			root.SetOut(&out)
			root.SetArgs([]string{"explain", "--payload", payload, "--shape", "count", "--log-level", "error"})

			// Act
			err := root.Execute()

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("strategy: network_only"))
			Expect(out.String()).To(ContainSubstring("SELECT COUNT(*) AS total"))
			Expect(out.String()).To(ContainSubstring("ssid"))
			Expect(out.String()).To(ContainSubstring(`["%cafe%"]`))
		})

		It("should fail and list validation errors", func() {
			payload := writeFile(dir, "payload.json", `{"filters": {"rssiMin": -200}, "enabled": {"rssiMin": true}}`)
			var stderr bytes.Buffer
			root := NewRootCommand()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&stderr)
			root.SetArgs([]string{"explain", "--payload", payload, "--log-level", "error"})

			err := root.Execute()

			Expect(err).To(HaveOccurred())
			Expect(stderr.String()).To(ContainSubstring("rssiMin"))
		})

		It("should reject a missing payload file", func() {
			root := NewRootCommand()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs([]string{"explain", "--payload", filepath.Join(dir, "nope.json"), "--log-level", "error"})

			Expect(root.Execute()).To(MatchError(ContainSubstring("failed to open payload")))
		})
	})

	Context("token", func() {
		It("should refuse to sign without a secret", func() {
			root := NewRootCommand()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs([]string{"token", "--log-level", "error"})

			Expect(root.Execute()).To(HaveOccurred())
		})

		It("should print a token when a secret is set", func() {
			var out bytes.Buffer
			root := NewRootCommand()
			root.SetOut(&out)
			root.SetArgs([]string{"token", "--auth-secret", "s3cret", "--log-level", "error"})

			Expect(root.Execute()).To(Succeed())
			Expect(out.String()).To(MatchRegexp(`^[\w-]+\.[\w-]+\.[\w-]+\n$`))
		})
	})

	Context("loadConfigFile", func() {
		It("should fill flags that were not set explicitly", func() {
			// Arrange
			path := writeFile(dir, "shadowcheck.yaml", "log-level: warn\ndefault-page-size: 20\n")
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			level := fs.String("log-level", "debug", "")
			size := fs.Uint64("default-page-size", 50, "")
			port := fs.Int("port", 8000, "")
			Expect(fs.Parse([]string{"--log-level", "error"})).To(Succeed())

			// Act
			err := loadConfigFile(fs, path)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(*level).To(Equal("error"))
			Expect(*size).To(Equal(uint64(20)))
			Expect(*port).To(Equal(8000))
		})

		It("should report values that do not parse", func() {
			path := writeFile(dir, "shadowcheck.yaml", "port: eighty\n")
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.Int("port", 8000, "")

			Expect(loadConfigFile(fs, path)).To(MatchError(ContainSubstring("invalid value for port")))
		})
	})
})
