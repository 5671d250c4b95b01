package usecase

import (
	"context"

	"trainingcentre/internal/domain"
	"trainingcentre/internal/infrastructure/repository"
)

// Progress gained per enrollment, capped at 100.
const progressDelta = 15

// EnrollUseCase applies the enrollment policy and persists the updated
// user through the session slot. Payment collection is not its concern:
// for paid courses it only signals that the checkout step must run first.
type EnrollUseCase struct {
	catalog  *repository.CourseCatalog
	sessions *SessionUseCase
}

func NewEnrollUseCase(catalog *repository.CourseCatalog, sessions *SessionUseCase) *EnrollUseCase {
	return &EnrollUseCase{catalog: catalog, sessions: sessions}
}

// Enroll runs the policy for the session's user. Free courses finalize
// directly; paid ones return ErrPaymentRequired and leave the user
// unchanged.
func (uc *EnrollUseCase) Enroll(ctx context.Context, sessionID, courseID string) (*domain.User, error) {
	user, course, err := uc.lookup(ctx, sessionID, courseID)
	if err != nil {
		return nil, err
	}
	if user.IsEnrolled(course.ID) {
		return nil, domain.ErrAlreadyEnrolled
	}
	if !course.Free {
		return nil, domain.ErrPaymentRequired
	}
	return uc.finalize(ctx, sessionID, user, course)
}

// Pay simulates the payment step and finalizes. No transaction record is
// created; the duplicate check is the only resubmission guard.
func (uc *EnrollUseCase) Pay(ctx context.Context, sessionID, courseID string) (*domain.User, error) {
	user, course, err := uc.lookup(ctx, sessionID, courseID)
	if err != nil {
		return nil, err
	}
	if user.IsEnrolled(course.ID) {
		return nil, domain.ErrAlreadyEnrolled
	}
	return uc.finalize(ctx, sessionID, user, course)
}

func (uc *EnrollUseCase) lookup(ctx context.Context, sessionID, courseID string) (*domain.User, *domain.Course, error) {
	user, err := uc.sessions.Current(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrNotAuthenticated
	}
	course, ok := uc.catalog.FindByID(courseID)
	if !ok {
		return nil, nil, domain.ErrCourseNotFound
	}
	return user, course, nil
}

func (uc *EnrollUseCase) finalize(ctx context.Context, sessionID string, user *domain.User, course *domain.Course) (*domain.User, error) {
	updated := Finalize(user, course)
	if err := uc.sessions.Replace(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Finalize produces the post-enrollment record: course id appended,
// progress bumped by the fixed delta and clamped at 100. The input user
// is not mutated.
func Finalize(user *domain.User, course *domain.Course) *domain.User {
	updated := user.Clone()
	updated.EnrolledCourses = append(updated.EnrolledCourses, course.ID)
	updated.Progress = user.Progress + progressDelta
	if updated.Progress > 100 {
		updated.Progress = 100
	}
	return updated
}
