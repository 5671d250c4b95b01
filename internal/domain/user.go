package domain

// User is the record held in the session slot. It is always written and
// read wholesale: there is no partial-field update path.
type User struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Progress        int      `json:"progress"`
	EnrolledCourses []string `json:"enrolledCourses"`
}

// IsEnrolled reports whether the course id is already in the user's list.
func (u *User) IsEnrolled(courseID string) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so use cases can build the updated record
// without mutating the loaded one.
func (u *User) Clone() *User {
	clone := *u
	clone.EnrolledCourses = append([]string(nil), u.EnrolledCourses...)
	return &clone
}
