// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/availabilityslot"
	"github.com/mentora/mentora_backend/internal/repo/booking"
	"github.com/mentora/mentora_backend/internal/repo/category"
	"github.com/mentora/mentora_backend/internal/repo/review"
	"github.com/mentora/mentora_backend/internal/repo/tutorcategory"
	"github.com/mentora/mentora_backend/internal/repo/tutorprofile"
	"github.com/mentora/mentora_backend/internal/repo/user"
	"github.com/mentora/mentora_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	availabilityslotMixin := schema.AvailabilitySlot{}.Mixin()
	availabilityslotMixinFields0 := availabilityslotMixin[0].Fields()
	_ = availabilityslotMixinFields0
	availabilityslotMixinFields1 := availabilityslotMixin[1].Fields()
	_ = availabilityslotMixinFields1
	availabilityslotFields := schema.AvailabilitySlot{}.Fields()
	_ = availabilityslotFields
	// availabilityslotDescCreatedAt is the schema descriptor for created_at field.
	availabilityslotDescCreatedAt := availabilityslotMixinFields1[0].Descriptor()
	// availabilityslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityslot.DefaultCreatedAt = availabilityslotDescCreatedAt.Default.(func() time.Time)
	// availabilityslotDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityslotDescUpdatedAt := availabilityslotMixinFields1[1].Descriptor()
	// availabilityslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityslot.DefaultUpdatedAt = availabilityslotDescUpdatedAt.Default.(func() time.Time)
	// availabilityslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityslot.UpdateDefaultUpdatedAt = availabilityslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityslotDescIsBooked is the schema descriptor for is_booked field.
	availabilityslotDescIsBooked := availabilityslotFields[4].Descriptor()
	// availabilityslot.DefaultIsBooked holds the default value on creation for the is_booked field.
	availabilityslot.DefaultIsBooked = availabilityslotDescIsBooked.Default.(bool)
	// availabilityslotDescID is the schema descriptor for id field.
	availabilityslotDescID := availabilityslotMixinFields0[0].Descriptor()
	// availabilityslot.DefaultID holds the default value on creation for the id field.
	availabilityslot.DefaultID = availabilityslotDescID.Default.(func() uuid.UUID)
	bookingMixin := schema.Booking{}.Mixin()
	bookingMixinFields0 := bookingMixin[0].Fields()
	_ = bookingMixinFields0
	bookingMixinFields1 := bookingMixin[1].Fields()
	_ = bookingMixinFields1
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingMixinFields1[0].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingMixinFields1[1].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookingDescID is the schema descriptor for id field.
	bookingDescID := bookingMixinFields0[0].Descriptor()
	// booking.DefaultID holds the default value on creation for the id field.
	booking.DefaultID = bookingDescID.Default.(func() uuid.UUID)
	categoryMixin := schema.Category{}.Mixin()
	categoryMixinFields0 := categoryMixin[0].Fields()
	_ = categoryMixinFields0
	categoryMixinFields1 := categoryMixin[1].Fields()
	_ = categoryMixinFields1
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryMixinFields1[0].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryMixinFields1[1].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[0].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryMixinFields0[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	reviewMixin := schema.Review{}.Mixin()
	reviewMixinFields0 := reviewMixin[0].Fields()
	_ = reviewMixinFields0
	reviewMixinFields1 := reviewMixin[1].Fields()
	_ = reviewMixinFields1
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewMixinFields1[0].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescUpdatedAt is the schema descriptor for updated_at field.
	reviewDescUpdatedAt := reviewMixinFields1[1].Descriptor()
	// review.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	review.DefaultUpdatedAt = reviewDescUpdatedAt.Default.(func() time.Time)
	// review.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	review.UpdateDefaultUpdatedAt = reviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reviewDescRating is the schema descriptor for rating field.
	reviewDescRating := reviewFields[3].Descriptor()
	// review.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	review.RatingValidator = func() func(int) error {
		validators := reviewDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewMixinFields0[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	tutorcategoryMixin := schema.TutorCategory{}.Mixin()
	tutorcategoryMixinFields0 := tutorcategoryMixin[0].Fields()
	_ = tutorcategoryMixinFields0
	tutorcategoryMixinFields1 := tutorcategoryMixin[1].Fields()
	_ = tutorcategoryMixinFields1
	tutorcategoryFields := schema.TutorCategory{}.Fields()
	_ = tutorcategoryFields
	// tutorcategoryDescCreatedAt is the schema descriptor for created_at field.
	tutorcategoryDescCreatedAt := tutorcategoryMixinFields1[0].Descriptor()
	// tutorcategory.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorcategory.DefaultCreatedAt = tutorcategoryDescCreatedAt.Default.(func() time.Time)
	// tutorcategoryDescID is the schema descriptor for id field.
	tutorcategoryDescID := tutorcategoryMixinFields0[0].Descriptor()
	// tutorcategory.DefaultID holds the default value on creation for the id field.
	tutorcategory.DefaultID = tutorcategoryDescID.Default.(func() uuid.UUID)
	tutorprofileMixin := schema.TutorProfile{}.Mixin()
	tutorprofileMixinFields0 := tutorprofileMixin[0].Fields()
	_ = tutorprofileMixinFields0
	tutorprofileMixinFields1 := tutorprofileMixin[1].Fields()
	_ = tutorprofileMixinFields1
	tutorprofileFields := schema.TutorProfile{}.Fields()
	_ = tutorprofileFields
	// tutorprofileDescCreatedAt is the schema descriptor for created_at field.
	tutorprofileDescCreatedAt := tutorprofileMixinFields1[0].Descriptor()
	// tutorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorprofile.DefaultCreatedAt = tutorprofileDescCreatedAt.Default.(func() time.Time)
	// tutorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	tutorprofileDescUpdatedAt := tutorprofileMixinFields1[1].Descriptor()
	// tutorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tutorprofile.DefaultUpdatedAt = tutorprofileDescUpdatedAt.Default.(func() time.Time)
	// tutorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tutorprofile.UpdateDefaultUpdatedAt = tutorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tutorprofileDescHeadline is the schema descriptor for headline field.
	tutorprofileDescHeadline := tutorprofileFields[1].Descriptor()
	// tutorprofile.HeadlineValidator is a validator for the "headline" field. It is called by the builders before save.
	tutorprofile.HeadlineValidator = tutorprofileDescHeadline.Validators[0].(func(string) error)
	// tutorprofileDescRating is the schema descriptor for rating field.
	tutorprofileDescRating := tutorprofileFields[4].Descriptor()
	// tutorprofile.DefaultRating holds the default value on creation for the rating field.
	tutorprofile.DefaultRating = tutorprofileDescRating.Default.(float64)
	// tutorprofileDescReviewCount is the schema descriptor for review_count field.
	tutorprofileDescReviewCount := tutorprofileFields[5].Descriptor()
	// tutorprofile.DefaultReviewCount holds the default value on creation for the review_count field.
	tutorprofile.DefaultReviewCount = tutorprofileDescReviewCount.Default.(int)
	// tutorprofile.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	tutorprofile.ReviewCountValidator = tutorprofileDescReviewCount.Validators[0].(func(int) error)
	// tutorprofileDescIsAccepting is the schema descriptor for is_accepting field.
	tutorprofileDescIsAccepting := tutorprofileFields[6].Descriptor()
	// tutorprofile.DefaultIsAccepting holds the default value on creation for the is_accepting field.
	tutorprofile.DefaultIsAccepting = tutorprofileDescIsAccepting.Default.(bool)
	// tutorprofileDescID is the schema descriptor for id field.
	tutorprofileDescID := tutorprofileMixinFields0[0].Descriptor()
	// tutorprofile.DefaultID holds the default value on creation for the id field.
	tutorprofile.DefaultID = tutorprofileDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsBanned is the schema descriptor for is_banned field.
	userDescIsBanned := userFields[4].Descriptor()
	// user.DefaultIsBanned holds the default value on creation for the is_banned field.
	user.DefaultIsBanned = userDescIsBanned.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
