package state_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/state"
)

var _ = Describe("SessionPool", func() {
	var pool *state.SessionPool

	BeforeEach(func() {
		pool = state.NewSessionPool("Jarvis", "Pradyumna")
	})

	It("seeds new session memories with the identity constants", func() {
		mem := pool.Get("s1")
		name, ok := mem.Get(memory.KeyAIName)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("Jarvis"))
	})

	It("returns the same store for the same session", func() {
		pool.Get("s1").Set("city", "pune")

		value, ok := pool.Get("s1").Get("city")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("pune"))
		Expect(pool.Len()).To(Equal(1))
	})

	It("keeps sessions isolated from each other", func() {
		pool.Get("s1").Set("city", "pune")

		Expect(pool.Get("s2").Has("city")).To(BeFalse())
		Expect(pool.Len()).To(Equal(2))
	})
})
