package launcher_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pradyumna-dev/jarvis/pkg/launcher"
)

var _ = Describe("Launcher", func() {
	It("reports the platform when it has no opener", func() {
		l := launcher.NewForPlatform("plan9")

		err := l.OpenApp("notepad")
		Expect(err).To(HaveOccurred())

		var unsupported *launcher.UnsupportedPlatformError
		Expect(errors.As(err, &unsupported)).To(BeTrue())
		Expect(unsupported.Platform).To(Equal("plan9"))
	})

	It("swallows URL-open failures on unsupported platforms", func() {
		l := launcher.NewForPlatform("plan9")
		Expect(func() { l.OpenURL("https://example.com") }).ToNot(Panic())
	})

	It("builds a launcher for the current platform", func() {
		Expect(launcher.New()).ToNot(BeNil())
	})
})
