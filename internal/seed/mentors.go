package seed

import "github.com/pathfinder/backend/internal/models"

// Mentors returns a fresh copy of the built-in mentor catalogue. Every entry
// starts unregistered so it can be claimed through the mentor register route.
func Mentors() []*models.Mentor {
	return []*models.Mentor{
		{
			Name:       "Alex Chen",
			Email:      "alex.chen@example.com",
			Role:       "Senior Software Engineer",
			Company:    "Google",
			Bio:        "10+ years of experience in software development with expertise in AI and machine learning.",
			Expertise:  []string{"JavaScript", "Python", "Machine Learning", "AI", "Cloud Computing"},
			Industries: []string{"tech", "education"},
			ImageURL:   "https://img.freepik.com/free-photo/young-businessman-using-laptop-computer_1303-16971.jpg",
			Rating:     4.9,
			Availability: []models.DayAvailability{
				{Day: "Monday", Slots: []string{"10:00 AM", "2:00 PM", "4:00 PM"}},
				{Day: "Wednesday", Slots: []string{"11:00 AM", "3:00 PM", "5:00 PM"}},
				{Day: "Friday", Slots: []string{"9:00 AM", "1:00 PM", "3:00 PM"}},
			},
		},
		{
			Name:       "Sarah Kim",
			Email:      "sarah.kim@example.com",
			Role:       "Design Director",
			Company:    "Spotify",
			Bio:        "Creative design leader with a passion for user experience and brand identity.",
			Expertise:  []string{"UX Design", "UI Design", "Brand Strategy", "Product Design", "Design Systems"},
			Industries: []string{"tech", "retail"},
			ImageURL:   "https://img.freepik.com/free-photo/creative-designer-working-studio_23-2149285841.jpg",
			Rating:     4.8,
			Availability: []models.DayAvailability{
				{Day: "Tuesday", Slots: []string{"10:00 AM", "1:00 PM", "4:00 PM"}},
				{Day: "Thursday", Slots: []string{"11:00 AM", "2:00 PM", "5:00 PM"}},
				{Day: "Friday", Slots: []string{"9:00 AM", "12:00 PM", "3:00 PM"}},
			},
		},
		{
			Name:       "Marcus Johnson",
			Email:      "marcus.johnson@example.com",
			Role:       "Startup Founder & Advisor",
			Company:    "TechVentures",
			Bio:        "Serial entrepreneur with multiple successful exits. Passionate about helping new founders.",
			Expertise:  []string{"Entrepreneurship", "Business Strategy", "Fundraising", "Marketing", "Leadership"},
			Industries: []string{"tech", "finance", "healthcare"},
			ImageURL:   models.DefaultMentorImageURL,
			Rating:     4.7,
			Availability: []models.DayAvailability{
				{Day: "Monday", Slots: []string{"9:00 AM", "1:00 PM", "5:00 PM"}},
				{Day: "Wednesday", Slots: []string{"10:00 AM", "2:00 PM", "4:00 PM"}},
				{Day: "Thursday", Slots: []string{"11:00 AM", "3:00 PM", "5:00 PM"}},
			},
		},
		{
			Name:       "Priya Patel",
			Email:      "priya.patel@example.com",
			Role:       "Data Science Manager",
			Company:    "Netflix",
			Bio:        "Data scientist with expertise in big data and analytics. Helping students break into the field.",
			Expertise:  []string{"Data Science", "Python", "Machine Learning", "Big Data", "Statistics"},
			Industries: []string{"tech", "education", "entertainment"},
			ImageURL:   "https://img.freepik.com/free-photo/young-beautiful-woman-smart-casual-wear-glasses-holding-laptop-smiling-confident_176420-11094.jpg",
			Rating:     4.9,
			Availability: []models.DayAvailability{
				{Day: "Tuesday", Slots: []string{"9:00 AM", "11:00 AM", "3:00 PM"}},
				{Day: "Thursday", Slots: []string{"10:00 AM", "2:00 PM", "4:00 PM"}},
				{Day: "Friday", Slots: []string{"12:00 PM", "2:00 PM", "5:00 PM"}},
			},
		},
		{
			Name:       "James Wilson",
			Email:      "james.wilson@example.com",
			Role:       "Healthcare Consultant",
			Company:    "MedTech Solutions",
			Bio:        "Healthcare professional with a background in technology implementation and digital health.",
			Expertise:  []string{"Healthcare IT", "Digital Health", "Project Management", "Regulatory Compliance"},
			Industries: []string{"healthcare", "tech"},
			ImageURL:   "https://img.freepik.com/free-photo/portrait-smiling-young-doctor-healthcare-medicine-concept_53876-146667.jpg",
			Rating:     4.6,
			Availability: []models.DayAvailability{
				{Day: "Monday", Slots: []string{"11:00 AM", "2:00 PM", "4:00 PM"}},
				{Day: "Wednesday", Slots: []string{"9:00 AM", "1:00 PM", "5:00 PM"}},
				{Day: "Friday", Slots: []string{"10:00 AM", "12:00 PM", "3:00 PM"}},
			},
		},
		{
			Name:       "Michael Rodriguez",
			Email:      "michael.rodriguez@example.com",
			Role:       "Manufacturing Operations Director",
			Company:    "Tesla",
			Bio:        "Expert in advanced manufacturing processes and Industry 4.0 technologies with 15+ years of experience.",
			Expertise:  []string{"Manufacturing Operations", "Supply Chain", "Lean Manufacturing", "Automation", "Industry 4.0"},
			Industries: []string{"manufacturing", "tech", "automotive"},
			ImageURL:   "https://img.freepik.com/free-photo/engineer-working-factory_23-2148334556.jpg",
			Rating:     4.8,
			Availability: []models.DayAvailability{
				{Day: "Monday", Slots: []string{"8:00 AM", "1:00 PM", "4:00 PM"}},
				{Day: "Wednesday", Slots: []string{"9:00 AM", "2:00 PM", "5:00 PM"}},
				{Day: "Thursday", Slots: []string{"10:00 AM", "3:00 PM", "6:00 PM"}},
			},
		},
		{
			Name:       "Jennifer Lee",
			Email:      "jennifer.lee@example.com",
			Role:       "Quality Control Manager",
			Company:    "Boeing",
			Bio:        "Specialized in quality assurance and process improvement in manufacturing environments.",
			Expertise:  []string{"Quality Control", "Six Sigma", "Process Improvement", "Regulatory Compliance", "Team Leadership"},
			Industries: []string{"manufacturing", "aerospace"},
			ImageURL:   "https://img.freepik.com/free-photo/female-engineer-factory-with-tablet_23-2148334540.jpg",
			Rating:     4.7,
			Availability: []models.DayAvailability{
				{Day: "Tuesday", Slots: []string{"9:00 AM", "11:00 AM", "3:00 PM"}},
				{Day: "Thursday", Slots: []string{"10:00 AM", "2:00 PM", "4:00 PM"}},
				{Day: "Friday", Slots: []string{"8:00 AM", "12:00 PM", "2:00 PM"}},
			},
		},
	}
}
