package seed

import "github.com/dsu-aiml/portal/internal/app/models"

func student(reg, name, year string, semester int, section, dob, email, phone, blood string,
	cgpa, attendance float64, mentor, status string) *models.Student {
	return &models.Student{
		RegNo:      reg,
		Name:       name,
		Programme:  models.DefaultProgramme,
		Year:       &year,
		Semester:   &semester,
		Section:    &section,
		DOB:        &dob,
		Email:      &email,
		Phone:      &phone,
		BloodGroup: &blood,
		CGPA:       cgpa,
		Attendance: attendance,
		Mentor:     &mentor,
		Status:     status,
	}
}

func faculty(name, designation, qualification string, experience int, email, phone, subjects string, hod bool) *models.Faculty {
	return &models.Faculty{
		Name:          name,
		Designation:   designation,
		Qualification: &qualification,
		Experience:    experience,
		Email:         &email,
		Phone:         &phone,
		Subjects:      &subjects,
		IsHOD:         hod,
	}
}

// DefaultStudents returns the initial student roster
func DefaultStudents() []*models.Student {
	return []*models.Student{
		student("2122AIML001", "Aravind Ramasamy", "III", 5, "A", "2003-04-12", "aravind.r@dsu.edu.in", "9876543210", "O+", 8.7, 89, "Dr. S. Ananthi", "Active"),
		student("2122AIML002", "Priya Sundaram", "III", 5, "A", "2003-07-22", "priya.s@dsu.edu.in", "9876543211", "A+", 9.1, 94, "Dr. S. Ananthi", "Active"),
		student("2122AIML003", "Karthik Murugan", "III", 5, "B", "2003-01-08", "karthik.m@dsu.edu.in", "9876543212", "B+", 7.5, 71, "Prof. R. Kavitha", "Active"),
		student("2122AIML004", "Divya Krishnamurthy", "III", 5, "B", "2003-11-30", "divya.k@dsu.edu.in", "9876543213", "AB+", 8.2, 82, "Prof. R. Kavitha", "Active"),
		student("2122AIML005", "Rohith Selvaraj", "III", 5, "A", "2003-03-15", "rohith.s@dsu.edu.in", "9876543214", "O-", 6.9, 65, "Dr. S. Ananthi", "Active"),
		student("2122AIML006", "Nithya Rajendran", "III", 5, "A", "2003-06-20", "nithya.r@dsu.edu.in", "9876543215", "B-", 8.9, 91, "Dr. S. Ananthi", "Active"),
		student("2122AIML007", "Surya Prakash", "III", 5, "B", "2003-09-11", "surya.p@dsu.edu.in", "9876543216", "A-", 7.8, 77, "Prof. R. Kavitha", "Active"),
		student("2223AIML001", "Meenakshi Pillai", "II", 3, "A", "2004-09-05", "meena.p@dsu.edu.in", "9876543220", "A-", 9.3, 97, "Dr. V. Rajkumar", "Active"),
		student("2223AIML002", "Vishal Narayanan", "II", 3, "A", "2004-12-19", "vishal.n@dsu.edu.in", "9876543221", "B-", 7.8, 78, "Dr. V. Rajkumar", "Active"),
		student("2223AIML003", "Lavanya Subramanian", "II", 3, "B", "2004-06-25", "lavanya.s@dsu.edu.in", "9876543222", "O+", 8.5, 91, "Prof. M. Priya", "Active"),
		student("2223AIML004", "Harish Balaji", "II", 3, "B", "2004-02-14", "harish.b@dsu.edu.in", "9876543223", "A+", 8.0, 85, "Prof. M. Priya", "Active"),
		student("2223AIML005", "Anitha Ravi", "II", 3, "A", "2004-08-30", "anitha.r@dsu.edu.in", "9876543224", "AB-", 9.0, 93, "Dr. V. Rajkumar", "Active"),
		student("2324AIML001", "Arjun Balakrishnan", "I", 1, "A", "2005-02-14", "arjun.b@dsu.edu.in", "9876543230", "A+", 0.0, 88, "Dr. S. Ananthi", "Active"),
		student("2324AIML002", "Keerthana Murugesan", "I", 1, "A", "2005-05-18", "keerthana.m@dsu.edu.in", "9876543231", "O+", 0.0, 90, "Dr. S. Ananthi", "Active"),
		student("2324AIML003", "Dinesh Prabhu", "I", 1, "B", "2005-03-22", "dinesh.p@dsu.edu.in", "9876543232", "B+", 0.0, 75, "Prof. R. Kavitha", "Active"),
		student("2021AIML001", "Soundarya Rajan", "IV", 7, "A", "2002-08-10", "soundarya.r@dsu.edu.in", "9876543200", "B+", 9.0, 93, "Dr. V. Rajkumar", "Active"),
		student("2021AIML002", "Elan Chezhiyan", "IV", 7, "B", "2002-05-27", "elan.c@dsu.edu.in", "9876543201", "AB-", 7.2, 60, "Prof. R. Kavitha", "Inactive"),
		student("2021AIML003", "Pavithra Mani", "IV", 7, "A", "2002-11-03", "pavithra.m@dsu.edu.in", "9876543202", "O-", 8.6, 87, "Dr. V. Rajkumar", "Active"),
	}
}

// DefaultFaculty returns the initial faculty roster
func DefaultFaculty() []*models.Faculty {
	return []*models.Faculty{
		faculty("Dr. S. Ananthi", "HOD & Professor", "Ph.D (AI), M.E., B.E.", 18, "ananthi.s@dsu.edu.in", "9876540001", "Deep Learning, Neural Networks, Research Methods", true),
		faculty("Prof. R. Kavitha", "Associate Professor", "M.E. (CSE), B.E.", 12, "kavitha.r@dsu.edu.in", "9876540002", "Natural Language Processing, Machine Learning, Python", false),
		faculty("Dr. V. Rajkumar", "Associate Professor", "Ph.D (Data Science), M.Tech.", 15, "rajkumar.v@dsu.edu.in", "9876540003", "Big Data Analytics, Cloud Computing, Database Systems", false),
		faculty("Prof. M. Priya", "Assistant Professor", "M.Tech (IT), B.E.", 8, "priya.m@dsu.edu.in", "9876540004", "IoT and Embedded Systems, Computer Networks", false),
		faculty("Dr. K. Senthilkumar", "Professor", "Ph.D (ML), M.E., B.E.", 20, "senthil.k@dsu.edu.in", "9876540005", "Computer Vision, Image Processing, AI Fundamentals", false),
		faculty("Prof. A. Vijayalakshmi", "Assistant Professor", "M.E. (CSE), B.E.", 6, "vijaya.a@dsu.edu.in", "9876540006", "Data Structures, Algorithms, Discrete Mathematics", false),
		faculty("Prof. P. Suresh", "Assistant Professor", "M.Tech (AI), B.E.", 5, "suresh.p@dsu.edu.in", "9876540007", "Reinforcement Learning, Probability & Statistics", false),
		faculty("Dr. R. Maheswari", "Associate Professor", "Ph.D (Networks), M.E.", 14, "mahes.r@dsu.edu.in", "9876540008", "Software Engineering, Agile Methods, Project Management", false),
		faculty("Prof. T. Kalaivani", "Assistant Professor", "M.Sc (CS), B.Sc.", 7, "kalaivani.t@dsu.edu.in", "9876540009", "Mathematics for AI, Linear Algebra, Calculus", false),
	}
}
