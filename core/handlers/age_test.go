package handlers_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pradyumna-dev/jarvis/core/handlers"
	"github.com/pradyumna-dev/jarvis/core/memory"
)

var _ = Describe("AgeHandler", func() {
	var (
		handler *handlers.AgeHandler
		mem     *memory.Store
	)

	BeforeEach(func() {
		handler = handlers.NewAge()
		handler.Now = func() time.Time {
			return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
		}
		mem = memory.NewStore("Jarvis", "Pradyumna")
	})

	It("computes the age from a stored dob", func() {
		mem.Set(memory.KeyDOB, "January 1, 1990")
		result := handler.Handle("what is my age", mem)
		Expect(result).ToNot(BeNil())
		Expect(result.Response).To(Equal("You are 34 years old."))
		Expect(result.MemoryChanged).To(BeFalse())
	})

	It("decrements the age before the birthday has passed this year", func() {
		mem.Set(memory.KeyDOB, "December 31, 1990")
		result := handler.Handle("how old am i, what's my age", mem)
		Expect(result).ToNot(BeNil())
		Expect(result.Response).To(Equal("You are 33 years old."))
	})

	It("asks for the birthday again when the stored dob does not parse", func() {
		mem.Set(memory.KeyDOB, "01/01/1990")
		before := mem.Facts()

		result := handler.Handle("what is my age", mem)
		Expect(result).ToNot(BeNil())
		Expect(result.Response).To(Equal("I remember your birthday, but I can't calculate your age with the format I have. Please tell me your birthday again in a full format like 'January 1, 1990'."))
		Expect(result.MemoryChanged).To(BeFalse())
		Expect(mem.Facts()).To(Equal(before))
	})

	It("declines when no dob is stored", func() {
		Expect(handler.Handle("what is my age", mem)).To(BeNil())
	})

	It("ignores user_info.birthday, which never feeds the dob key", func() {
		mem.SetUserInfo(memory.UserBirthday, "january 1, 1990")
		Expect(handler.Handle("what is my age", mem)).To(BeNil())
	})

	It("declines queries without the word age", func() {
		mem.Set(memory.KeyDOB, "January 1, 1990")
		Expect(handler.Handle("how old am i", mem)).To(BeNil())
	})
})
