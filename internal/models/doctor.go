package models

// Doctor is a registry entry with a static list of bookable time slots.
type Doctor struct {
	ID           string   `json:"id" db:"id"`                     // Record id, DOC- prefixed
	Name         string   `json:"name" db:"name"`                 // Full name with title
	Specialty    string   `json:"specialty" db:"specialty"`       // Medical specialty
	Experience   string   `json:"experience" db:"experience"`     // Free-form, e.g. "14 Years"
	Bio          string   `json:"bio" db:"bio"`                   // Short biography
	ImageURL     string   `json:"imageUrl" db:"image_url"`        // Portrait URL
	Availability []string `json:"availability" db:"availability"` // Ordered slot strings, e.g. "09:00 AM"
}

// DoctorPatch carries a partial doctor update. Nil fields are left unchanged.
type DoctorPatch struct {
	Name         *string   `json:"name,omitempty"`
	Specialty    *string   `json:"specialty,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Availability *[]string `json:"availability,omitempty"`
}

// Apply merges the patch into d.
func (p DoctorPatch) Apply(d *Doctor) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Specialty != nil {
		d.Specialty = *p.Specialty
	}
	if p.Experience != nil {
		d.Experience = *p.Experience
	}
	if p.Bio != nil {
		d.Bio = *p.Bio
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}
	if p.Availability != nil {
		d.Availability = *p.Availability
	}
}

// Specialties offered by the hospital.
var Specialties = []string{
	"Cardiology",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Oncology",
	"Dermatology",
	"Internal Medicine",
	"Psychiatry",
}

// SeedDoctors returns the built-in registry used to populate an empty
// doctor collection on first access.
func SeedDoctors() []Doctor {
	return []Doctor{
		{
			ID:           "DOC-01",
			Name:         "Dr. Sarah Mitchell",
			Specialty:    "Cardiology",
			Experience:   "14 Years",
			Bio:          "Board-certified cardiologist specializing in interventional cardiology and cardiovascular disease prevention. Fellow of the American College of Cardiology.",
			ImageURL:     "https://images.unsplash.com/photo-1559839734-2b71f1536783?auto=format&fit=crop&q=80&w=300&h=300",
			Availability: []string{"09:00 AM", "10:30 AM", "02:00 PM", "04:30 PM"},
		},
		{
			ID:           "DOC-02",
			Name:         "Dr. James Wilson",
			Specialty:    "Neurology",
			Experience:   "18 Years",
			Bio:          "Senior Neurologist with extensive research in neurodegenerative diseases. Expert in treating complex epilepsy and movement disorders.",
			ImageURL:     "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=300&h=300",
			Availability: []string{"11:00 AM", "01:00 PM", "03:30 PM", "05:00 PM"},
		},
		{
			ID:           "DOC-03",
			Name:         "Dr. Elena Rodriguez",
			Specialty:    "Pediatrics",
			Experience:   "10 Years",
			Bio:          "Dedicated pediatrician focused on adolescent medicine and developmental health. Committed to family-centered care models.",
			ImageURL:     "https://images.unsplash.com/photo-1594824476967-48c8b964273f?auto=format&fit=crop&q=80&w=300&h=300",
			Availability: []string{"08:30 AM", "12:00 PM", "02:30 PM", "04:00 PM"},
		},
		{
			ID:           "DOC-04",
			Name:         "Dr. Michael Chen",
			Specialty:    "Orthopedics",
			Experience:   "16 Years",
			Bio:          "Specialist in sports medicine and reconstructive joint surgery. Former lead surgeon for national athletic associations.",
			ImageURL:     "https://images.unsplash.com/photo-1622253692010-333f2da6031d?auto=format&fit=crop&q=80&w=300&h=300",
			Availability: []string{"10:00 AM", "01:30 PM", "03:00 PM"},
		},
	}
}
