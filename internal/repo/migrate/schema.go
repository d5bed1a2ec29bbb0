// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AvailabilitySlotsColumns holds the columns for the "availability_slots" table.
	AvailabilitySlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tutor_profile_id", Type: field.TypeUUID},
		{Name: "category_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "is_booked", Type: field.TypeBool, Default: false},
	}
	// AvailabilitySlotsTable holds the schema information for the "availability_slots" table.
	AvailabilitySlotsTable = &schema.Table{
		Name:       "availability_slots",
		Columns:    AvailabilitySlotsColumns,
		PrimaryKey: []*schema.Column{AvailabilitySlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityslot_tutor_profile_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitySlotsColumns[3], AvailabilitySlotsColumns[5]},
			},
			{
				Name:    "availabilityslot_tutor_profile_id_is_booked_start_time",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitySlotsColumns[3], AvailabilitySlotsColumns[7], AvailabilitySlotsColumns[5]},
			},
		},
	}
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "tutor_profile_id", Type: field.TypeUUID},
		{Name: "slot_id", Type: field.TypeUUID},
		{Name: "category_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"confirmed", "completed", "cancelled"}, Default: "confirmed"},
		{Name: "hourly_rate", Type: field.TypeInt64},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "booking_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[9]},
			},
			{
				Name:    "booking_tutor_profile_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[4], BookingsColumns[9], BookingsColumns[7]},
			},
			{
				Name:    "booking_slot_id",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[5]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "booking_id", Type: field.TypeUUID, Unique: true},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "tutor_profile_id", Type: field.TypeUUID},
		{Name: "rating", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "review_tutor_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[5], ReviewsColumns[1]},
			},
			{
				Name:    "review_student_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[4]},
			},
		},
	}
	// TutorCategoriesColumns holds the columns for the "tutor_categories" table.
	TutorCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tutor_profile_id", Type: field.TypeUUID},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// TutorCategoriesTable holds the schema information for the "tutor_categories" table.
	TutorCategoriesTable = &schema.Table{
		Name:       "tutor_categories",
		Columns:    TutorCategoriesColumns,
		PrimaryKey: []*schema.Column{TutorCategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorcategory_tutor_profile_id_category_id",
				Unique:  true,
				Columns: []*schema.Column{TutorCategoriesColumns[2], TutorCategoriesColumns[3]},
			},
			{
				Name:    "tutorcategory_category_id",
				Unique:  false,
				Columns: []*schema.Column{TutorCategoriesColumns[3]},
			},
		},
	}
	// TutorProfilesColumns holds the columns for the "tutor_profiles" table.
	TutorProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "headline", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "hourly_rate", Type: field.TypeInt64},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "is_accepting", Type: field.TypeBool, Default: true},
	}
	// TutorProfilesTable holds the schema information for the "tutor_profiles" table.
	TutorProfilesTable = &schema.Table{
		Name:       "tutor_profiles",
		Columns:    TutorProfilesColumns,
		PrimaryKey: []*schema.Column{TutorProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorprofile_rating",
				Unique:  false,
				Columns: []*schema.Column{TutorProfilesColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"student", "tutor", "admin"}, Default: "student"},
		{Name: "is_banned", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "banned_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AvailabilitySlotsTable,
		BookingsTable,
		CategoriesTable,
		ReviewsTable,
		TutorCategoriesTable,
		TutorProfilesTable,
		UsersTable,
	}
)

func init() {
}
