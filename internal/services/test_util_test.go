package services

import (
	"context"
	"sort"
	"strings"

	"github.com/StudyHive/course_service/internal/clients/razorpay"
	"github.com/StudyHive/course_service/internal/domain"
	"github.com/StudyHive/course_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories. They return
// gorm.ErrRecordNotFound exactly like the real ones so the services'
// error classification is exercised for real.

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// ---------- credential store ----------

type fakeCredentialStore struct {
	byEmail map[string]*repository.Credential
}

func newFakeCredentialStore(creds ...*repository.Credential) *fakeCredentialStore {
	s := &fakeCredentialStore{byEmail: map[string]*repository.Credential{}}
	for _, c := range creds {
		s.byEmail[c.Email] = c
	}
	return s
}

func (s *fakeCredentialStore) CredentialByEmail(email string) (*repository.Credential, error) {
	if c, ok := s.byEmail[email]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeCredentialStore) CredentialByID(id uint) (*repository.Credential, error) {
	for _, c := range s.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ---------- students ----------

type fakeStudentRepo struct {
	students map[uint]*domain.Student
	saveErr  error
}

func newFakeStudentRepo(students ...*domain.Student) *fakeStudentRepo {
	r := &fakeStudentRepo{students: map[uint]*domain.Student{}}
	for _, s := range students {
		r.students[s.ID] = s
	}
	return r
}

func (r *fakeStudentRepo) CreateStudent(student *domain.Student) (*domain.Student, error) {
	student.ID = uint(len(r.students) + 1)
	r.students[student.ID] = student
	return student, nil
}

func (r *fakeStudentRepo) CredentialByEmail(email string) (*repository.Credential, error) {
	for _, s := range r.students {
		if s.Email == email {
			return &repository.Credential{ID: s.ID, Email: s.Email, PasswordHash: s.PasswordHash, IsBlocked: s.IsBlocked}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) CredentialByID(id uint) (*repository.Credential, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &repository.Credential{ID: s.ID, Email: s.Email, PasswordHash: s.PasswordHash, IsBlocked: s.IsBlocked}, nil
}

func (r *fakeStudentRepo) FindStudentById(studentID uint) (*domain.Student, error) {
	s, ok := r.students[studentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) SaveStudent(student *domain.Student) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) ListStudents() ([]domain.Student, error) {
	out := make([]domain.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeStudentRepo) SearchStudents(page, limit int, search string) ([]domain.Student, int64, int64, error) {
	all, _ := r.ListStudents()
	totalStudents := int64(len(all))

	matched := all
	if search != "" {
		matched = nil
		for _, s := range all {
			if containsFold(s.Name, search) || containsFold(s.Email, search) {
				matched = append(matched, s)
			}
		}
	}
	total := int64(len(matched))

	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, total, totalStudents, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, totalStudents, nil
}

// ---------- tutors ----------

type fakeTutorRepo struct {
	tutors map[uint]*domain.Tutor
}

func newFakeTutorRepo(tutors ...*domain.Tutor) *fakeTutorRepo {
	r := &fakeTutorRepo{tutors: map[uint]*domain.Tutor{}}
	for _, tu := range tutors {
		r.tutors[tu.ID] = tu
	}
	return r
}

func (r *fakeTutorRepo) CreateTutor(tutor *domain.Tutor) (*domain.Tutor, error) {
	tutor.ID = uint(len(r.tutors) + 1)
	r.tutors[tutor.ID] = tutor
	return tutor, nil
}

func (r *fakeTutorRepo) CredentialByEmail(email string) (*repository.Credential, error) {
	for _, tu := range r.tutors {
		if tu.Email == email {
			return &repository.Credential{ID: tu.ID, Email: tu.Email, PasswordHash: tu.PasswordHash, IsBlocked: tu.IsBlocked}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTutorRepo) CredentialByID(id uint) (*repository.Credential, error) {
	tu, ok := r.tutors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &repository.Credential{ID: tu.ID, Email: tu.Email, PasswordHash: tu.PasswordHash, IsBlocked: tu.IsBlocked}, nil
}

func (r *fakeTutorRepo) FindTutorById(tutorID uint) (*domain.Tutor, error) {
	tu, ok := r.tutors[tutorID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tu, nil
}

func (r *fakeTutorRepo) ListTutors() ([]domain.Tutor, error) {
	out := make([]domain.Tutor, 0, len(r.tutors))
	for _, tu := range r.tutors {
		out = append(out, *tu)
	}
	return out, nil
}

// ---------- courses ----------

type fakeCourseRepo struct {
	courses map[uint]*domain.Course
	nextID  uint

	// captured pagination inputs
	lastPage   int
	lastLimit  int
	lastSearch string
}

func newFakeCourseRepo(courses ...*domain.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: map[uint]*domain.Course{}}
	for _, c := range courses {
		r.courses[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *fakeCourseRepo) CreateCourse(course *domain.Course) (*domain.Course, error) {
	r.nextID++
	course.ID = r.nextID
	r.courses[course.ID] = course
	return course, nil
}

func (r *fakeCourseRepo) FindCourseById(courseID uint) (*domain.Course, error) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCourseRepo) ListAdminCourses(adminID uint, page, limit int, search string) ([]domain.Course, int64, error) {
	r.lastPage, r.lastLimit, r.lastSearch = page, limit, search
	var matched []domain.Course
	for _, c := range r.sorted() {
		if c.AdminID != adminID {
			continue
		}
		if search != "" && !containsFold(c.Title, search) && !containsFold(c.Description, search) {
			continue
		}
		matched = append(matched, c)
	}
	return paginate(matched, page, limit)
}

func (r *fakeCourseRepo) ListPublicCourses(page, limit int, search string) ([]domain.Course, int64, error) {
	r.lastPage, r.lastLimit, r.lastSearch = page, limit, search
	var matched []domain.Course
	for _, c := range r.sorted() {
		if search != "" && !containsFold(c.Title, search) && !containsFold(c.Description, search) {
			continue
		}
		matched = append(matched, c)
	}
	return paginate(matched, page, limit)
}

func (r *fakeCourseRepo) sorted() []domain.Course {
	out := make([]domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func paginate(courses []domain.Course, page, limit int) ([]domain.Course, int64, error) {
	total := int64(len(courses))
	offset := (page - 1) * limit
	if offset >= len(courses) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(courses) {
		end = len(courses)
	}
	return courses[offset:end], total, nil
}

func (r *fakeCourseRepo) ListCourses() ([]domain.Course, error) {
	return r.sorted(), nil
}

func (r *fakeCourseRepo) UpdateCourse(courseID uint, fields map[string]interface{}) (*domain.Course, error) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"].(string); ok {
		c.Title = v
	}
	if v, ok := fields["image_url"].(string); ok {
		c.ImageURL = v
	}
	if v, ok := fields["description"].(string); ok {
		c.Description = v
	}
	if v, ok := fields["price"].(int64); ok {
		c.Price = v
	}
	return c, nil
}

func (r *fakeCourseRepo) DeleteCourse(courseID uint) (bool, error) {
	if _, ok := r.courses[courseID]; !ok {
		return false, nil
	}
	delete(r.courses, courseID)
	return true, nil
}

// ---------- enrollments ----------

type fakeEnrollmentRepo struct {
	courses     *fakeCourseRepo
	enrollments []*domain.Enrollment
	enrollErr   error
}

func newFakeEnrollmentRepo(courses *fakeCourseRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{courses: courses}
}

func (r *fakeEnrollmentRepo) Enroll(enrollment *domain.Enrollment) (bool, error) {
	if r.enrollErr != nil {
		return false, r.enrollErr
	}
	for _, e := range r.enrollments {
		if e.PaymentID == enrollment.PaymentID {
			return false, nil
		}
	}
	enrollment.ID = uint(len(r.enrollments) + 1)
	r.enrollments = append(r.enrollments, enrollment)
	if c, ok := r.courses.courses[enrollment.CourseID]; ok {
		c.BuyCount++
	}
	return true, nil
}

func (r *fakeEnrollmentRepo) FindByPaymentID(paymentID string) (*domain.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.PaymentID == paymentID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEnrollmentRepo) ListStudentEnrollments(studentID uint) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// ---------- leaves ----------

type fakeLeaveRepo struct {
	leaves map[uint]*domain.LeaveRequest
	nextID uint
}

func newFakeLeaveRepo(leaves ...*domain.LeaveRequest) *fakeLeaveRepo {
	r := &fakeLeaveRepo{leaves: map[uint]*domain.LeaveRequest{}}
	for _, l := range leaves {
		r.leaves[l.ID] = l
		if l.ID > r.nextID {
			r.nextID = l.ID
		}
	}
	return r
}

func (r *fakeLeaveRepo) CreateLeave(leave *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	r.nextID++
	leave.ID = r.nextID
	r.leaves[leave.ID] = leave
	return leave, nil
}

func (r *fakeLeaveRepo) FindLeaveById(leaveID uint) (*domain.LeaveRequest, error) {
	l, ok := r.leaves[leaveID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (r *fakeLeaveRepo) SaveLeave(leave *domain.LeaveRequest) error {
	r.leaves[leave.ID] = leave
	return nil
}

func (r *fakeLeaveRepo) ListStudentLeaves(studentID uint, page, limit int) ([]domain.LeaveRequest, int64, error) {
	var matched []domain.LeaveRequest
	for _, l := range r.sorted() {
		if l.StudentID == studentID {
			matched = append(matched, l)
		}
	}
	return paginateLeaves(matched, page, limit)
}

func (r *fakeLeaveRepo) ListPendingLeaves(page, limit int) ([]domain.LeaveRequest, int64, error) {
	var matched []domain.LeaveRequest
	for _, l := range r.sorted() {
		if l.Status == domain.LeaveStatusPending {
			matched = append(matched, l)
		}
	}
	return paginateLeaves(matched, page, limit)
}

func (r *fakeLeaveRepo) ListApprovedLeaves() ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	for _, l := range r.sorted() {
		if l.Status == domain.LeaveStatusApproved {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *fakeLeaveRepo) sorted() []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, 0, len(r.leaves))
	for _, l := range r.leaves {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func paginateLeaves(leaves []domain.LeaveRequest, page, limit int) ([]domain.LeaveRequest, int64, error) {
	total := int64(len(leaves))
	offset := (page - 1) * limit
	if offset >= len(leaves) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(leaves) {
		end = len(leaves)
	}
	return leaves[offset:end], total, nil
}

// ---------- gateway + producer ----------

type fakeGateway struct {
	secret      string
	orderErr    error
	lastAmount  int64
	lastReceipt string
	orderCalls  int
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*razorpay.Order, error) {
	g.orderCalls++
	g.lastAmount = amount
	g.lastReceipt = receipt
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	return &razorpay.Order{ID: "order_test", Amount: amount, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return razorpay.VerifySignature(orderID, paymentID, signature, g.secret)
}

type fakeProducer struct {
	messages [][]byte
	err      error
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, value)
	return nil
}

// ---------- misc ----------

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
