package handlers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pradyumna-dev/jarvis/core/handlers"
	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/pkg/config"
)

var _ = Describe("Dispatcher", func() {
	var (
		dispatcher *handlers.Dispatcher
		mem        *memory.Store
	)

	BeforeEach(func() {
		dispatcher = handlers.NewDefaultDispatcher(&config.Commands{}, &fakeLauncher{}, &fakeBrowser{})
		mem = memory.NewStore("Jarvis", "Pradyumna")
	})

	It("signals no match when every handler declines", func() {
		Expect(dispatcher.Dispatch("xyzzy", mem)).To(BeNil())
	})

	It("routes memory assertions before greetings", func() {
		// "hello is great" matches both the assertion pattern and the
		// greeting prefix; the memory handler runs first.
		result := dispatcher.Dispatch("hello is great", mem)
		Expect(result).ToNot(BeNil())
		Expect(result.Response).To(Equal("Okay, I will remember that your hello is great."))
		Expect(result.MemoryChanged).To(BeTrue())

		value, ok := mem.Get("hello")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("great"))
	})

	It("answers identity queries without touching memory", func() {
		result := dispatcher.Dispatch("who are you", mem)
		Expect(result).ToNot(BeNil())
		Expect(result.Response).To(Equal("I am Jarvis, created by Pradyumna."))
		Expect(result.MemoryChanged).To(BeFalse())
	})

	It("answers age queries before date/time ones", func() {
		mem.Set(memory.KeyDOB, "not a date")
		// Contains "date" too, but the age handler is consulted first.
		result := dispatcher.Dispatch("my age from that date", mem)
		Expect(result).ToNot(BeNil())
		Expect(result.Response).To(HavePrefix("I remember your birthday"))
	})
})
