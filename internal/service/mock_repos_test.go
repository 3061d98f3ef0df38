package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"uni-manage/backend/internal/model"
	"uni-manage/backend/internal/repository"
)

// ── 通用辅助 ──

// mockClock 为 mock 写入的记录分配单调递增的创建时间
type mockClock struct {
	base time.Time
	n    int
}

func (c *mockClock) next() time.Time {
	c.n++
	return c.base.Add(time.Duration(c.n) * time.Second)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// newMockRepository 构造全部由内存 mock 组成的 Repository 聚合
func newMockRepository() (*repository.Repository, *mockStore) {
	st := newMockStore()
	repo := &repository.Repository{
		User:         &mockUserRepo{st},
		Announcement: &mockAnnouncementRepo{st},
		Assignment:   &mockAssignmentRepo{st},
		Lecture:      &mockLectureRepo{st},
		Subject:      &mockSubjectRepo{st},
		ChatGroup:    &mockChatGroupRepo{st},
		Message:      &mockMessageRepo{st},
	}
	return repo, st
}

// mockStore 所有 mock 共享的内存存储，按插入顺序保存
type mockStore struct {
	clock         mockClock
	seq           int
	err           error // 非 nil 时所有操作返回该错误
	users         []*model.User
	announcements []*model.Announcement
	assignments   []*model.Assignment
	lectures      []*model.Lecture
	subjects      []*model.Subject
	chatGroups    []*model.ChatGroup
	messages      []*model.Message
}

func newMockStore() *mockStore {
	return &mockStore{clock: mockClock{base: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)}}
}

func (s *mockStore) stamp(m *model.BaseModel, prefix string) {
	s.seq++
	if m.ID == "" {
		m.ID = fmt.Sprintf("%s-%d", prefix, s.seq)
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.clock.next()
	}
}

func (s *mockStore) user(id string) *model.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *mockStore) subject(id string) *model.Subject {
	for _, sub := range s.subjects {
		if sub.ID == id {
			return sub
		}
	}
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct{ st *mockStore }

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.st.err != nil {
		return m.st.err
	}
	for _, u := range m.st.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.st.stamp(&user.BaseModel, "user")
	m.st.users = append(m.st.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	if u := m.st.user(id); u != nil {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	for _, u := range m.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.User, 0, len(m.st.users))
	for _, u := range m.st.users {
		result = append(result, *u)
	}
	return paginate(result, offset, limit), nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct{ st *mockStore }

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if m.st.err != nil {
		return m.st.err
	}
	m.st.stamp(&a.BaseModel, "ann")
	m.st.announcements = append(m.st.announcements, a)
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	for _, a := range m.st.announcements {
		if a.ID == id {
			out := *a
			out.Author = m.st.user(a.AuthorID)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context, filters *repository.AnnouncementListFilters, offset, limit int) ([]model.Announcement, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.Announcement, 0)
	for _, a := range m.st.announcements {
		if filters.Department != "" && a.Department != nil && *a.Department != filters.Department {
			continue
		}
		out := *a
		out.Author = m.st.user(a.AuthorID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct{ st *mockStore }

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	if m.st.err != nil {
		return m.st.err
	}
	m.st.stamp(&a.BaseModel, "asg")
	m.st.assignments = append(m.st.assignments, a)
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	for _, a := range m.st.assignments {
		if a.ID == id {
			out := *a
			out.Author = m.st.user(a.AuthorID)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, filters *repository.AssignmentListFilters, offset, limit int) ([]model.Assignment, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.Assignment, 0)
	for _, a := range m.st.assignments {
		if filters.Department != "" && a.Department != filters.Department {
			continue
		}
		if filters.Semester != "" && a.Semester != filters.Semester {
			continue
		}
		out := *a
		out.Author = m.st.user(a.AuthorID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

// ── Mock LectureRepository ──

type mockLectureRepo struct{ st *mockStore }

func (m *mockLectureRepo) Create(_ context.Context, l *model.Lecture) error {
	if m.st.err != nil {
		return m.st.err
	}
	m.st.stamp(&l.BaseModel, "lec")
	m.st.lectures = append(m.st.lectures, l)
	return nil
}

func (m *mockLectureRepo) GetByID(_ context.Context, id string) (*model.Lecture, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	for _, l := range m.st.lectures {
		if l.ID == id {
			out := *l
			out.Professor = m.st.user(l.ProfessorID)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLectureRepo) List(_ context.Context, filters *repository.LectureListFilters, offset, limit int) ([]model.Lecture, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.Lecture, 0)
	for _, l := range m.st.lectures {
		if filters.Department != "" && l.Department != filters.Department {
			continue
		}
		if filters.Semester != "" && l.Semester != filters.Semester {
			continue
		}
		if filters.Date != "" && l.Date != filters.Date {
			continue
		}
		out := *l
		out.Professor = m.st.user(l.ProfessorID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct{ st *mockStore }

func (m *mockSubjectRepo) Create(_ context.Context, s *model.Subject) error {
	if m.st.err != nil {
		return m.st.err
	}
	for _, sub := range m.st.subjects {
		if sub.Code == s.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	m.st.stamp(&s.BaseModel, "sub")
	m.st.subjects = append(m.st.subjects, s)
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	if s := m.st.subject(id); s != nil {
		out := *s
		out.Professor = m.st.user(s.ProfessorID)
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context, filters *repository.SubjectListFilters, offset, limit int) ([]model.Subject, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.Subject, 0)
	for _, s := range m.st.subjects {
		if filters.Department != "" && s.Department != filters.Department {
			continue
		}
		if filters.Semester != "" && s.Semester != filters.Semester {
			continue
		}
		out := *s
		out.Professor = m.st.user(s.ProfessorID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

// ── Mock ChatGroupRepository ──

type mockChatGroupRepo struct{ st *mockStore }

func (m *mockChatGroupRepo) Create(_ context.Context, g *model.ChatGroup) error {
	if m.st.err != nil {
		return m.st.err
	}
	m.st.stamp(&g.BaseModel, "grp")
	m.st.chatGroups = append(m.st.chatGroups, g)
	return nil
}

func (m *mockChatGroupRepo) GetByID(_ context.Context, id string) (*model.ChatGroup, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	for _, g := range m.st.chatGroups {
		if g.ID == id {
			out := *g
			out.Teacher = m.st.user(g.TeacherID)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChatGroupRepo) ListByTeacher(_ context.Context, teacherID string, offset, limit int) ([]model.ChatGroup, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.ChatGroup, 0)
	for _, g := range m.st.chatGroups {
		if g.TeacherID != teacherID {
			continue
		}
		out := *g
		out.Teacher = m.st.user(g.TeacherID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

func (m *mockChatGroupRepo) ListForStudent(_ context.Context, studentID string, offset, limit int) ([]model.ChatGroup, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.ChatGroup, 0)
	student := m.st.user(studentID)
	if student == nil || student.Semester == nil {
		return result, nil
	}
	for _, g := range m.st.chatGroups {
		sub := m.st.subject(g.SubjectID)
		if sub == nil || sub.Department != student.Department || g.Semester != *student.Semester {
			continue
		}
		out := *g
		out.Teacher = m.st.user(g.TeacherID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

// ── Mock MessageRepository ──

type mockMessageRepo struct{ st *mockStore }

func (m *mockMessageRepo) Create(_ context.Context, msg *model.Message) error {
	if m.st.err != nil {
		return m.st.err
	}
	m.st.stamp(&msg.BaseModel, "msg")
	m.st.messages = append(m.st.messages, msg)
	return nil
}

func (m *mockMessageRepo) GetByID(_ context.Context, id string) (*model.Message, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	for _, msg := range m.st.messages {
		if msg.ID == id {
			out := *msg
			out.Sender = m.st.user(msg.SenderID)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMessageRepo) ListByChatGroup(_ context.Context, chatGroupID string, offset, limit int) ([]model.Message, error) {
	if m.st.err != nil {
		return nil, m.st.err
	}
	result := make([]model.Message, 0)
	for _, msg := range m.st.messages {
		if msg.ChatGroupID != chatGroupID {
			continue
		}
		out := *msg
		out.Sender = m.st.user(msg.SenderID)
		result = append(result, out)
	}
	return paginate(result, offset, limit), nil
}

// ── 测试数据构造 ──

func strPtr(s string) *string { return &s }

func seedUser(st *mockStore, name, email, role, dept string, semester *string) *model.User {
	u := &model.User{Name: name, Email: email, Role: role, Department: dept, Semester: semester}
	st.stamp(&u.BaseModel, "user")
	st.users = append(st.users, u)
	return u
}
