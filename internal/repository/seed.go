package repository

import (
	"campusnet/internal/models"
	"time"
)

// Демо-данные для первичного наполнения хранилища: два senior и два junior,
// четыре поста с лайками и комментариями. Используются также как fallback,
// когда сохраненная коллекция повреждена.

func SeedUsers() []models.User {
	return []models.User{
		{
			UserID:     "1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Avatar:     "https://i.pravatar.cc/150?img=1",
			Department: "Computer Science",
			Year:       "4th",
			Role:       models.RoleSenior,
			Bio:        "Senior CS student passionate about web development and mentoring.",
			CreatedAt:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:     "2",
			Name:       "Jane Smith",
			Email:      "jane@example.com",
			Avatar:     "https://i.pravatar.cc/150?img=5",
			Department: "Computer Science",
			Year:       "2nd",
			Role:       models.RoleJunior,
			Bio:        "Sophomore interested in machine learning and algorithms.",
			CreatedAt:  time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:     "3",
			Name:       "Mike Johnson",
			Email:      "mike@example.com",
			Avatar:     "https://i.pravatar.cc/150?img=8",
			Department: "Engineering",
			Year:       "4th",
			Role:       models.RoleSenior,
			Bio:        "Final year engineering student with internship experience at top companies.",
			CreatedAt:  time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:     "4",
			Name:       "Sarah Williams",
			Email:      "sarah@example.com",
			Avatar:     "https://i.pravatar.cc/150?img=9",
			Department: "Business",
			Year:       "1st",
			Role:       models.RoleJunior,
			Bio:        "Freshman business student looking for guidance on course selection.",
			CreatedAt:  time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedPosts() []models.Post {
	return []models.Post{
		{
			PostID:    "1",
			Content:   "Just finished my internship at Google! Feel free to reach out if you need any tips for applying to tech companies. #Internship #TechJobs",
			Images:    []string{"https://images.unsplash.com/photo-1573164713988-8665fc963095?auto=format&fit=crop&w=1469&q=80"},
			CreatedAt: time.Date(2023, 8, 10, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 8, 10, 14, 30, 0, 0, time.UTC),
			AuthorID:  "1",
			Likes:     []string{"2", "4"},
			Comments: []models.Comment{
				{
					CommentID: "1",
					Content:   "That's amazing! I'd love to hear more about your experience.",
					CreatedAt: time.Date(2023, 8, 10, 15, 45, 0, 0, time.UTC),
					AuthorID:  "2",
					PostID:    "1",
					Likes:     []string{},
				},
				{
					CommentID: "2",
					Content:   "Congrats! Did you work remotely or on-site?",
					CreatedAt: time.Date(2023, 8, 10, 16, 20, 0, 0, time.UTC),
					AuthorID:  "4",
					PostID:    "1",
					Likes:     []string{},
				},
			},
			Tags: []string{"#Internship", "#TechJobs"},
		},
		{
			PostID:    "2",
			Content:   "Can any seniors recommend good electives for second-year Computer Science students? Looking for something challenging but interesting. #StudyTips #CourseSelection",
			CreatedAt: time.Date(2023, 8, 9, 10, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 8, 9, 10, 15, 0, 0, time.UTC),
			AuthorID:  "2",
			Likes:     []string{"1", "3"},
			Comments: []models.Comment{
				{
					CommentID: "3",
					Content:   "I'd recommend Advanced Algorithms if you're interested in theoretical CS, or Web Development if you prefer practical skills.",
					CreatedAt: time.Date(2023, 8, 9, 11, 5, 0, 0, time.UTC),
					AuthorID:  "1",
					PostID:    "2",
					Likes:     []string{"2"},
				},
			},
			Tags: []string{"#StudyTips", "#CourseSelection"},
		},
		{
			PostID:  "3",
			Content: "Hosting a resume workshop next Friday at the Engineering building. Open to all students! #CareerAdvice #ResumeHelp",
			Images: []string{
				"https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?auto=format&fit=crop&w=1470&q=80",
				"https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&w=1470&q=80",
			},
			CreatedAt: time.Date(2023, 8, 8, 16, 45, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 8, 8, 16, 45, 0, 0, time.UTC),
			AuthorID:  "3",
			Likes:     []string{"2", "4", "1"},
			Comments:  []models.Comment{},
			Tags:      []string{"#CareerAdvice", "#ResumeHelp"},
		},
		{
			PostID:    "4",
			Content:   "First day of classes and I'm already lost. Any advice for navigating the campus? #FirstYear #CampusLife",
			CreatedAt: time.Date(2023, 8, 7, 9, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 8, 7, 9, 30, 0, 0, time.UTC),
			AuthorID:  "4",
			Likes:     []string{},
			Comments: []models.Comment{
				{
					CommentID: "4",
					Content:   "Download the campus map app, it's a lifesaver! Also, don't hesitate to ask upperclassmen for directions, we're happy to help.",
					CreatedAt: time.Date(2023, 8, 7, 10, 15, 0, 0, time.UTC),
					AuthorID:  "3",
					PostID:    "4",
					Likes:     []string{"4"},
				},
				{
					CommentID: "5",
					Content:   "I felt the same way last year! It gets easier, I promise. Join some clubs to meet people who can show you around.",
					CreatedAt: time.Date(2023, 8, 7, 11, 20, 0, 0, time.UTC),
					AuthorID:  "2",
					PostID:    "4",
					Likes:     []string{},
				},
			},
			Tags: []string{"#FirstYear", "#CampusLife"},
		},
	}
}
