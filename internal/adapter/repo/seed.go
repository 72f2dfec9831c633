package repo

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campusfund/internal/domain"
)

// Seed is the reference data a store starts with.
type Seed struct {
	Categories []domain.Category
	Users      []domain.User
	Campaigns  []domain.Campaign
	Donations  []domain.Donation
}

const imageBase = "https://storage.googleapis.com/workspace-0f70711f-8b4e-4d94-86f1-2a93ccde5887/image/"

// SeedEpoch is the instant the demo timestamps are written against.
// DefaultSeed moves every timestamp by now minus SeedEpoch, so campaign
// deadlines keep their distance from the moment the store is built.
var SeedEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func parseSeedTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(v string) *string { return &v }

// DefaultSeed returns the demo catalog as of now: six categories, four
// users, six active campaigns and three completed donations. User password
// hashes are left empty; see Seed.HashPasswords.
func DefaultSeed(now time.Time) Seed {
	shift := now.UTC().Truncate(time.Second).Sub(SeedEpoch)
	ts := func(v string) time.Time { return parseSeedTime(v).Add(shift) }

	categories := []domain.Category{
		{ID: "1", Name: "Academic Research", Description: "Research projects, equipment, and academic conferences", Icon: "🔬", Color: "bg-blue-500"},
		{ID: "2", Name: "Student Organizations", Description: "Club activities, events, and organizational needs", Icon: "👥", Color: "bg-green-500"},
		{ID: "3", Name: "Community Outreach", Description: "Service projects and community engagement initiatives", Icon: "🤝", Color: "bg-purple-500"},
		{ID: "4", Name: "Campus Infrastructure", Description: "Campus improvements and facility upgrades", Icon: "🏗️", Color: "bg-orange-500"},
		{ID: "5", Name: "Student Support", Description: "Scholarships and student financial assistance", Icon: "🎓", Color: "bg-indigo-500"},
		{ID: "6", Name: "Technology", Description: "Tech equipment, software, and digital initiatives", Icon: "💻", Color: "bg-cyan-500"},
	}

	users := []domain.User{
		{
			ID: "1", Name: "Sarah Johnson", Email: "sarah.johnson@university.edu", Role: domain.UserRoleStudent,
			StudentID: "STU2024001", Department: "Computer Science",
			ProfileImage: imageBase + "343c984e-5b6b-4a21-be29-1d0491216bc9.png",
			CreatedAt:    ts("2024-01-15T10:00:00Z"), IsVerified: true,
		},
		{
			ID: "2", Name: "Dr. Michael Chen", Email: "michael.chen@university.edu", Role: domain.UserRoleFaculty,
			Department:   "Biology",
			ProfileImage: imageBase + "85028f38-1f22-4ff2-ac94-e84a98dbbd8b.png",
			CreatedAt:    ts("2024-01-10T09:00:00Z"), IsVerified: true,
		},
		{
			ID: "3", Name: "Emily Rodriguez", Email: "emily.rodriguez@university.edu", Role: domain.UserRoleStudent,
			StudentID: "STU2024002", Department: "Environmental Science",
			ProfileImage: imageBase + "76d7cf9a-4730-4a60-8d31-d6347d1c47ff.png",
			CreatedAt:    ts("2024-01-20T14:30:00Z"), IsVerified: true,
		},
		{
			ID: "4", Name: "James Wilson", Email: "james.wilson@gmail.com", Role: domain.UserRoleDonor,
			ProfileImage: imageBase + "d426dd6e-a0f5-41a3-ad28-d455ef5f2fd9.png",
			CreatedAt:    ts("2024-02-01T11:00:00Z"), IsVerified: true,
		},
	}

	creator := func(i int) *domain.User {
		u := users[i]
		return &u
	}

	campaigns := []domain.Campaign{
		{
			ID:               "1",
			Title:            "Advanced AI Research Lab Equipment",
			ShortDescription: "High-performance computing cluster for machine learning research",
			Description:      "Our Computer Science department is seeking funding to acquire state-of-the-art GPU computing equipment for our AI research lab. This equipment will enable groundbreaking research in machine learning, natural language processing, and computer vision. The lab will serve 50+ graduate students and faculty members, contributing to publications and industry partnerships.",
			Goal:             25000, Raised: 18750,
			Deadline: ts("2024-06-30T23:59:59Z"), CreatedAt: ts("2024-02-01T10:00:00Z"), UpdatedAt: ts("2024-02-15T16:30:00Z"),
			Category: categories[0], Status: domain.CampaignStatusActive,
			CreatorID: "2", Creator: creator(1),
			Images: []string{imageBase + "a286cd9c-355b-4c4f-8202-77b20623eb95.png", imageBase + "66c6cac3-911d-482d-b59d-824ab505c20c.png"},
			Tags:   []string{"AI", "Research", "Technology", "Graduate Studies"},
			DonorCount: 47, Featured: true, UniversityApproved: true,
		},
		{
			ID:               "2",
			Title:            "Student Environmental Club Tree Planting Initiative",
			ShortDescription: "Campus-wide sustainability project to plant 500 native trees",
			Description:      "The Environmental Club is launching an ambitious project to plant 500 native trees across our campus. This initiative will improve air quality, provide natural habitat, and demonstrate our commitment to sustainability. We need funding for saplings, planting supplies, and maintenance equipment.",
			Goal:             8000, Raised: 6200,
			Deadline: ts("2024-05-15T23:59:59Z"), CreatedAt: ts("2024-01-25T14:00:00Z"), UpdatedAt: ts("2024-02-10T12:00:00Z"),
			Category: categories[2], Status: domain.CampaignStatusActive,
			CreatorID: "3", Creator: creator(2),
			Images: []string{imageBase + "13c584b5-5c8d-4607-8961-73e9f528d34f.png", imageBase + "9692825e-d617-45c7-8123-84a2fc3a3da2.png"},
			Tags:   []string{"Environment", "Sustainability", "Community", "Campus"},
			DonorCount: 32, Featured: true, UniversityApproved: true,
		},
		{
			ID:               "3",
			Title:            "Scholarship Fund for First-Generation Students",
			ShortDescription: "Supporting students who are first in their family to attend college",
			Description:      "This scholarship fund aims to provide financial assistance to first-generation college students who face unique challenges. The fund will cover tuition, books, and living expenses, helping to ensure these students can focus on their studies without financial stress.",
			Goal:             50000, Raised: 12500,
			Deadline: ts("2024-08-31T23:59:59Z"), CreatedAt: ts("2024-01-30T09:00:00Z"), UpdatedAt: ts("2024-02-12T15:45:00Z"),
			Category: categories[4], Status: domain.CampaignStatusActive,
			CreatorID: "1", Creator: creator(0),
			Images: []string{imageBase + "47064ad6-f43a-4dc3-893e-17f7970604e5.png", imageBase + "2a97ad53-1936-4314-b89d-9ace66ea3b7e.png"},
			Tags:   []string{"Scholarship", "Education", "First-Generation", "Support"},
			DonorCount: 28, Featured: false, UniversityApproved: true,
		},
		{
			ID:               "4",
			Title:            "New Student Recreation Center Equipment",
			ShortDescription: "Modern fitness equipment for improved student health and wellness",
			Description:      "Our student recreation center needs updated fitness equipment to better serve our growing student population. The new equipment will include cardio machines, strength training equipment, and group fitness accessories to promote student health and wellness.",
			Goal:             35000, Raised: 8900,
			Deadline: ts("2024-07-01T23:59:59Z"), CreatedAt: ts("2024-02-05T11:30:00Z"), UpdatedAt: ts("2024-02-14T10:15:00Z"),
			Category: categories[3], Status: domain.CampaignStatusActive,
			CreatorID: "2", Creator: creator(1),
			Images: []string{imageBase + "a2a4e539-eeed-410a-8e71-a4e3ad009540.png", imageBase + "13afb42f-f6be-46a9-af9a-e813b50cf4dc.png"},
			Tags:   []string{"Fitness", "Health", "Recreation", "Student Life"},
			DonorCount: 19, Featured: false, UniversityApproved: true,
		},
		{
			ID:               "5",
			Title:            "Engineering Robotics Competition Team",
			ShortDescription: "Funding for robotics team to compete in national championships",
			Description:      "Our engineering robotics team has qualified for the national championships! We need funding for travel expenses, competition fees, and final robot improvements. This is a fantastic opportunity to showcase our university's engineering excellence on a national stage.",
			Goal:             15000, Raised: 11200,
			Deadline: ts("2024-04-30T23:59:59Z"), CreatedAt: ts("2024-02-08T13:00:00Z"), UpdatedAt: ts("2024-02-16T17:20:00Z"),
			Category: categories[1], Status: domain.CampaignStatusActive,
			CreatorID: "1", Creator: creator(0),
			Images: []string{imageBase + "2863dabc-7702-4f4a-b3dc-e92dd07b9897.png", imageBase + "55543444-f813-4cc5-840e-fb1974a3d1cf.png"},
			Tags:   []string{"Engineering", "Robotics", "Competition", "STEM"},
			DonorCount: 41, Featured: true, UniversityApproved: true,
		},
		{
			ID:               "6",
			Title:            "Digital Arts Studio Upgrade",
			ShortDescription: "Professional software and equipment for digital arts students",
			Description:      "The Digital Arts program needs updated software licenses and professional equipment to keep pace with industry standards. This upgrade will include design software, drawing tablets, 4K monitors, and specialized audio equipment for multimedia projects.",
			Goal:             22000, Raised: 5600,
			Deadline: ts("2024-09-15T23:59:59Z"), CreatedAt: ts("2024-02-10T10:45:00Z"), UpdatedAt: ts("2024-02-17T14:30:00Z"),
			Category: categories[5], Status: domain.CampaignStatusActive,
			CreatorID: "3", Creator: creator(2),
			Images: []string{imageBase + "6bc1c632-52d3-4bab-b970-7aaf42bcb955.png", imageBase + "bf024041-b1d5-4c4a-8c34-2284cf3ca7f3.png"},
			Tags:   []string{"Arts", "Digital", "Technology", "Creative"},
			DonorCount: 15, Featured: false, UniversityApproved: true,
		},
	}

	donations := []domain.Donation{
		{
			ID: "1", CampaignID: "1", DonorID: strPtr("4"), DonorName: "James Wilson", DonorEmail: "james.wilson@gmail.com",
			Amount: 500, Message: "Excited to support AI research at the university!",
			CreatedAt: ts("2024-02-15T14:30:00Z"), PaymentStatus: domain.PaymentStatusCompleted, PaymentMethod: domain.PaymentMethodCard,
		},
		{
			ID: "2", CampaignID: "1", DonorName: "Anonymous Donor", DonorEmail: "anonymous@donor.com",
			Amount: 1000, Anonymous: true,
			CreatedAt: ts("2024-02-14T09:15:00Z"), PaymentStatus: domain.PaymentStatusCompleted, PaymentMethod: domain.PaymentMethodCard,
		},
		{
			ID: "3", CampaignID: "2", DonorID: strPtr("4"), DonorName: "James Wilson", DonorEmail: "james.wilson@gmail.com",
			Amount: 100, Message: "Great environmental initiative!",
			CreatedAt: ts("2024-02-12T16:45:00Z"), PaymentStatus: domain.PaymentStatusCompleted, PaymentMethod: domain.PaymentMethodCard,
		},
	}

	return Seed{Categories: categories, Users: users, Campaigns: campaigns, Donations: donations}
}

// HashPasswords gives every seeded user without a hash the same demo
// password.
func (s *Seed) HashPasswords(password string) error {
	if password == "" {
		return errors.New("demo password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	for i := range s.Users {
		if s.Users[i].PasswordHash == "" {
			s.Users[i].PasswordHash = string(hash)
		}
	}
	return nil
}
