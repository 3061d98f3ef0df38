package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"uni-manage/backend/internal/model"
	"uni-manage/backend/internal/repository"
	pkgerrors "uni-manage/backend/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

// setupTestDB 每个测试使用独立的内存 SQLite 库
func setupTestDB(t *testing.T) (*gorm.DB, *repository.Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开 SQLite 失败: %v", err)
	}

	// :memory: 库按连接隔离，限制为单连接保证所有查询看到同一份数据
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.User{},
		&model.Announcement{},
		&model.Assignment{},
		&model.Lecture{},
		&model.Subject{},
		&model.ChatGroup{},
		&model.Message{},
	); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}

	return db, repository.NewRepository(db)
}

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, repo *repository.Repository, email, dept string, semester *string) *model.User {
	t.Helper()
	u := &model.User{
		Name:       "用户-" + email,
		Email:      email,
		Role:       "student",
		Department: dept,
		Semester:   semester,
	}
	if err := repo.User.Create(context.Background(), u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func createSubject(t *testing.T, repo *repository.Repository, code, dept, semester, professorID string) *model.Subject {
	t.Helper()
	s := &model.Subject{
		Name:        "科目-" + code,
		Code:        code,
		Department:  dept,
		ProfessorID: professorID,
		Description: "desc",
		Semester:    semester,
	}
	if err := repo.Subject.Create(context.Background(), s); err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}
	return s
}

func createChatGroup(t *testing.T, repo *repository.Repository, name, subjectID, teacherID, semester string) *model.ChatGroup {
	t.Helper()
	g := &model.ChatGroup{
		Name:      name,
		SubjectID: subjectID,
		TeacherID: teacherID,
		Semester:  semester,
	}
	if err := repo.ChatGroup.Create(context.Background(), g); err != nil {
		t.Fatalf("创建群聊失败: %v", err)
	}
	return g
}

// ═══════════════════════════════════════════════════════════
// User
// ═══════════════════════════════════════════════════════════

func TestUserRepo_CreateAndGet(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	u := createUser(t, repo, "a@x.edu", "CS", strPtr("3"))
	if u.ID == "" {
		t.Fatal("期望生成主键")
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("期望写入 created_at")
	}
	if u.CreatedAt.Nanosecond()%1000 != 0 {
		t.Errorf("期望 created_at 精确到微秒，实际 %v", u.CreatedAt)
	}

	got, err := repo.User.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Email != "a@x.edu" || got.Department != "CS" || got.Semester == nil || *got.Semester != "3" {
		t.Errorf("读取结果与写入不一致: %+v", got)
	}
	if got.Avatar != nil {
		t.Errorf("期望 avatar 为 nil，实际 %v", *got.Avatar)
	}
	if !got.CreatedAt.Equal(u.CreatedAt) {
		t.Errorf("期望读取的 created_at 与写入一致: %v vs %v", got.CreatedAt, u.CreatedAt)
	}
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	_, repo := setupTestDB(t)

	_, err := repo.User.GetByID(context.Background(), "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	original := createUser(t, repo, "dup@x.edu", "CS", nil)

	err := repo.User.Create(ctx, &model.User{
		Name:       "另一个人",
		Email:      "dup@x.edu",
		Role:       "professor",
		Department: "EE",
	})
	if !pkgerrors.IsDuplicateKey(err) {
		t.Fatalf("期望唯一约束冲突，实际: %v", err)
	}

	got, err := repo.User.GetByEmail(ctx, "dup@x.edu")
	if err != nil {
		t.Fatalf("GetByEmail 应成功: %v", err)
	}
	if got.ID != original.ID || got.Department != "CS" {
		t.Errorf("原记录不应被修改: %+v", got)
	}
}

func TestUserRepo_List_Pagination(t *testing.T) {
	db, repo := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		u := &model.User{
			Name:       fmt.Sprintf("u%d", i),
			Email:      fmt.Sprintf("u%d@x.edu", i),
			Role:       "student",
			Department: "CS",
		}
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("创建用户失败: %v", err)
		}
	}

	tests := []struct {
		name   string
		skip   int
		limit  int
		expect []string
	}{
		{"首页", 0, 2, []string{"u0", "u1"}},
		{"中间页", 1, 2, []string{"u1", "u2"}},
		{"末页不足", 4, 10, []string{"u4"}},
		{"越界", 10, 5, []string{}},
		{"limit 为 0", 0, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.User.List(ctx, tt.skip, tt.limit)
			if err != nil {
				t.Fatalf("List 应成功: %v", err)
			}
			if users == nil {
				t.Fatal("空结果也应返回非 nil 切片")
			}
			if len(users) != len(tt.expect) {
				t.Fatalf("期望 %d 条，实际 %d 条", len(tt.expect), len(users))
			}
			for i, name := range tt.expect {
				if users[i].Name != name {
					t.Errorf("第 %d 条期望 %s，实际 %s", i, name, users[i].Name)
				}
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// Announcement
// ═══════════════════════════════════════════════════════════

func TestAnnouncementRepo_List_DepartmentIncludesGlobal(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	author := createUser(t, repo, "prof@x.edu", "CS", nil)

	for _, a := range []*model.Announcement{
		{Title: "cs", Content: "c", AuthorID: author.ID, Department: strPtr("CS")},
		{Title: "ee", Content: "c", AuthorID: author.ID, Department: strPtr("EE")},
		{Title: "global", Content: "c", AuthorID: author.ID, Important: true},
	} {
		if err := repo.Announcement.Create(ctx, a); err != nil {
			t.Fatalf("创建公告失败: %v", err)
		}
	}

	all, err := repo.Announcement.List(ctx, &repository.AnnouncementListFilters{}, 0, 100)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("不带院系过滤期望 3 条，实际 %d 条", len(all))
	}

	cs, err := repo.Announcement.List(ctx, &repository.AnnouncementListFilters{Department: "CS"}, 0, 100)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	titles := map[string]bool{}
	for _, a := range cs {
		titles[a.Title] = true
		if a.Author == nil || a.Author.ID != author.ID {
			t.Errorf("期望预加载作者，实际 %+v", a.Author)
		}
	}
	if len(cs) != 2 || !titles["cs"] || !titles["global"] {
		t.Errorf("CS 过滤期望 [cs global]，实际 %v", titles)
	}

	none, err := repo.Announcement.List(ctx, &repository.AnnouncementListFilters{Department: "MATH"}, 0, 100)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(none) != 1 || none[0].Title != "global" {
		t.Errorf("无本院系公告时期望只返回全局公告，实际 %d 条", len(none))
	}
}

func TestAnnouncementRepo_GetByID(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	author := createUser(t, repo, "prof@x.edu", "CS", nil)

	a := &model.Announcement{Title: "t", Content: "c", AuthorID: author.ID, Semester: strPtr("1")}
	if err := repo.Announcement.Create(ctx, a); err != nil {
		t.Fatalf("创建公告失败: %v", err)
	}

	got, err := repo.Announcement.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Department != nil {
		t.Errorf("期望全局公告 department 为 nil")
	}
	if got.Author == nil || got.Author.Email != "prof@x.edu" {
		t.Errorf("期望预加载作者")
	}
}

// ═══════════════════════════════════════════════════════════
// Assignment / Lecture / Subject
// ═══════════════════════════════════════════════════════════

func TestAssignmentRepo_List_Filters(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	author := createUser(t, repo, "prof@x.edu", "CS", nil)

	seed := []struct{ dept, sem string }{
		{"CS", "1"}, {"CS", "2"}, {"EE", "1"}, {"CS", "1"},
	}
	for i, s := range seed {
		a := &model.Assignment{
			Title:       fmt.Sprintf("hw%d", i),
			Description: "d",
			DueDate:     "2025-10-01",
			Department:  s.dept,
			Subject:     "Algorithms",
			AuthorID:    author.ID,
			Attachments: strPtr(`["a.pdf"]`),
			Semester:    s.sem,
		}
		if err := repo.Assignment.Create(ctx, a); err != nil {
			t.Fatalf("创建作业失败: %v", err)
		}
	}

	tests := []struct {
		name    string
		filters repository.AssignmentListFilters
		want    int
	}{
		{"无过滤", repository.AssignmentListFilters{}, 4},
		{"仅院系", repository.AssignmentListFilters{Department: "CS"}, 3},
		{"仅学期", repository.AssignmentListFilters{Semester: "1"}, 3},
		{"院系+学期", repository.AssignmentListFilters{Department: "CS", Semester: "1"}, 2},
		{"无匹配", repository.AssignmentListFilters{Department: "BIO"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.Assignment.List(ctx, &tt.filters, 0, 100)
			if err != nil {
				t.Fatalf("List 应成功: %v", err)
			}
			if len(list) != tt.want {
				t.Errorf("期望 %d 条，实际 %d 条", tt.want, len(list))
			}
		})
	}
}

func TestLectureRepo_List_DateFilter(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	prof := createUser(t, repo, "prof@x.edu", "CS", nil)

	for i, date := range []string{"2025-10-01", "2025-10-02", "2025-10-01"} {
		l := &model.Lecture{
			Title:       fmt.Sprintf("lec%d", i),
			Description: "d",
			Date:        date,
			StartTime:   "09:00",
			EndTime:     "10:30",
			Location:    "A101",
			Department:  "CS",
			Subject:     "OS",
			ProfessorID: prof.ID,
			Semester:    "3",
		}
		if err := repo.Lecture.Create(ctx, l); err != nil {
			t.Fatalf("创建讲座失败: %v", err)
		}
	}

	list, err := repo.Lecture.List(ctx, &repository.LectureListFilters{Department: "CS", Semester: "3", Date: "2025-10-01"}, 0, 100)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望 2 条，实际 %d 条", len(list))
	}
	for _, l := range list {
		if l.Professor == nil || l.Professor.ID != prof.ID {
			t.Errorf("期望预加载主讲教师")
		}
	}

	got, err := repo.Lecture.GetByID(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Location != "A101" {
		t.Errorf("期望 Location=A101，实际 %s", got.Location)
	}
}

func TestSubjectRepo_UniqueCodeAndFilters(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	prof := createUser(t, repo, "prof@x.edu", "CS", nil)

	createSubject(t, repo, "CS101", "CS", "1", prof.ID)
	createSubject(t, repo, "CS201", "CS", "2", prof.ID)

	err := repo.Subject.Create(ctx, &model.Subject{
		Name: "dup", Code: "CS101", Department: "CS", ProfessorID: prof.ID, Description: "d", Semester: "1",
	})
	if !pkgerrors.IsDuplicateKey(err) {
		t.Errorf("期望科目代码唯一约束冲突，实际: %v", err)
	}

	list, err := repo.Subject.List(ctx, &repository.SubjectListFilters{Department: "CS", Semester: "2"}, 0, 100)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 1 || list[0].Code != "CS201" {
		t.Errorf("期望只返回 CS201，实际 %d 条", len(list))
	}
}

// ═══════════════════════════════════════════════════════════
// ChatGroup
// ═══════════════════════════════════════════════════════════

func TestChatGroupRepo_ListForStudent(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	teacher := createUser(t, repo, "t@x.edu", "CS", nil)
	student := createUser(t, repo, "a@x.edu", "CS", strPtr("3"))

	csSubject := createSubject(t, repo, "CS301", "CS", "3", teacher.ID)
	eeSubject := createSubject(t, repo, "EE301", "EE", "3", teacher.ID)

	g := createChatGroup(t, repo, "G", csSubject.ID, teacher.ID, "3")
	createChatGroup(t, repo, "wrong-semester", csSubject.ID, teacher.ID, "4")
	createChatGroup(t, repo, "wrong-department", eeSubject.ID, teacher.ID, "3")

	list, err := repo.ChatGroup.ListForStudent(ctx, student.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListForStudent 应成功: %v", err)
	}
	if len(list) != 1 || list[0].ID != g.ID {
		t.Fatalf("期望只返回群聊 G，实际 %d 条", len(list))
	}
	if list[0].Teacher == nil || list[0].Teacher.ID != teacher.ID {
		t.Errorf("期望预加载教师")
	}
}

func TestChatGroupRepo_ListForStudent_UnknownStudent(t *testing.T) {
	_, repo := setupTestDB(t)

	list, err := repo.ChatGroup.ListForStudent(context.Background(), "nobody", 0, 100)
	if err != nil {
		t.Fatalf("未知学生不应返回错误: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("期望空列表，实际 %v", list)
	}
}

func TestChatGroupRepo_ListForStudent_NoSemester(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	teacher := createUser(t, repo, "t@x.edu", "CS", nil)
	student := createUser(t, repo, "s@x.edu", "CS", nil)
	subject := createSubject(t, repo, "CS101", "CS", "1", teacher.ID)
	createChatGroup(t, repo, "G", subject.ID, teacher.ID, "1")

	list, err := repo.ChatGroup.ListForStudent(ctx, student.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListForStudent 应成功: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("未设置学期的学生不应匹配任何群聊，实际 %d 条", len(list))
	}
}

func TestChatGroupRepo_ListByTeacher(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	t1 := createUser(t, repo, "t1@x.edu", "CS", nil)
	t2 := createUser(t, repo, "t2@x.edu", "CS", nil)
	subject := createSubject(t, repo, "CS101", "CS", "1", t1.ID)
	createChatGroup(t, repo, "a", subject.ID, t1.ID, "1")
	createChatGroup(t, repo, "b", subject.ID, t1.ID, "1")
	createChatGroup(t, repo, "c", subject.ID, t2.ID, "1")

	list, err := repo.ChatGroup.ListByTeacher(ctx, t1.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListByTeacher 应成功: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("期望 2 条，实际 %d 条", len(list))
	}

	page, err := repo.ChatGroup.ListByTeacher(ctx, t1.ID, 1, 1)
	if err != nil {
		t.Fatalf("ListByTeacher 应成功: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("分页期望 1 条，实际 %d 条", len(page))
	}
}

// ═══════════════════════════════════════════════════════════
// Message
// ═══════════════════════════════════════════════════════════

func TestMessageRepo_ListByChatGroup_Ordered(t *testing.T) {
	db, repo := setupTestDB(t)
	ctx := context.Background()

	teacher := createUser(t, repo, "t@x.edu", "CS", nil)
	subject := createSubject(t, repo, "CS101", "CS", "1", teacher.ID)
	g1 := createChatGroup(t, repo, "g1", subject.ID, teacher.ID, "1")
	g2 := createChatGroup(t, repo, "g2", subject.ID, teacher.ID, "1")

	base := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	// 故意乱序写入
	for _, offset := range []int{3, 1, 2} {
		m := &model.Message{
			Content:     fmt.Sprintf("m%d", offset),
			SenderID:    teacher.ID,
			ChatGroupID: g1.ID,
		}
		m.CreatedAt = base.Add(time.Duration(offset) * time.Second)
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("创建消息失败: %v", err)
		}
	}
	if err := repo.Message.Create(ctx, &model.Message{Content: "other", SenderID: teacher.ID, ChatGroupID: g2.ID}); err != nil {
		t.Fatalf("创建消息失败: %v", err)
	}

	list, err := repo.Message.ListByChatGroup(ctx, g1.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListByChatGroup 应成功: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 条，实际 %d 条", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.Before(list[i-1].CreatedAt) {
			t.Errorf("消息未按时间升序: %v 在 %v 之后", list[i].CreatedAt, list[i-1].CreatedAt)
		}
	}
	if list[0].Content != "m1" || list[2].Content != "m3" {
		t.Errorf("期望顺序 m1,m2,m3，实际 %s,%s,%s", list[0].Content, list[1].Content, list[2].Content)
	}
	if list[0].Sender == nil || list[0].Sender.ID != teacher.ID {
		t.Errorf("期望预加载发送者")
	}

	page, err := repo.Message.ListByChatGroup(ctx, g1.ID, 1, 1)
	if err != nil {
		t.Fatalf("ListByChatGroup 应成功: %v", err)
	}
	if len(page) != 1 || page[0].Content != "m2" {
		t.Errorf("分页期望 m2")
	}
}
