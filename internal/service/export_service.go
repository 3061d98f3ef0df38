package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"uni-manage/backend/config"
	"uni-manage/backend/internal/dto"
	"uni-manage/backend/internal/model"
	"uni-manage/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAssignments = errors.New("no assignments to export")
	ErrExportNoLectures    = errors.New("no lectures to export")
	ErrExportGenerateFail  = errors.New("failed to generate export file")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 作业导出为 Excel (.xlsx)，讲座导出为 iCalendar (.ics)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
//   - 单次导出行数受 export.max_rows 限制，按创建顺序截断
type ExportService interface {
	// ExportAssignments 导出作业为 Excel，返回内容与建议文件名
	ExportAssignments(ctx context.Context, req *dto.ExportFilterRequest) (*bytes.Buffer, string, error)
	// ExportLectures 导出讲座为 iCalendar，返回内容与建议文件名
	ExportLectures(ctx context.Context, req *dto.ExportFilterRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	logger  *zap.Logger
	loc     *time.Location
	maxRows int
	now     func() time.Time
}

// NewExportService 创建 ExportService 实例
// 时区在配置加载时已校验，这里解析失败时退回 UTC
func NewExportService(cfg *config.ExportConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("导出时区无效，使用 UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.UTC
	}
	return &exportService{
		repo:    repo,
		logger:  logger,
		loc:     loc,
		maxRows: cfg.MaxRows,
		now:     time.Now,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportAssignments — 导出作业为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单个 Sheet "Assignments"
//   - 第 1 行为表头，之后每行一条作业，按创建顺序排列

var assignmentHeaders = []string{
	"Title", "Subject", "Department", "Semester", "Due Date", "Author", "Author Email", "Attachments", "Created At",
}

func (s *exportService) ExportAssignments(ctx context.Context, req *dto.ExportFilterRequest) (*bytes.Buffer, string, error) {
	filters := &repository.AssignmentListFilters{
		Department: req.Department,
		Semester:   req.Semester,
	}

	list, err := s.repo.Assignment.List(ctx, filters, 0, s.maxRows)
	if err != nil {
		s.logger.Error("查询导出作业失败", zap.Error(err))
		return nil, "", err
	}
	if len(list) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Assignments"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "D", 18)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "G", 24)
	f.SetColWidth(sheetName, "H", "H", 32)
	f.SetColWidth(sheetName, "I", "I", 22)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range assignmentHeaders {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(assignmentHeaders)-1), 1), headerStyle)

	// 数据行
	for i := range list {
		a := &list[i]
		row := i + 2

		authorName, authorEmail := "", ""
		if a.Author != nil {
			authorName = a.Author.Name
			authorEmail = a.Author.Email
		}
		attachments := ""
		if a.Attachments != nil {
			attachments = *a.Attachments
		}

		values := []interface{}{
			a.Title,
			a.Subject,
			a.Department,
			a.Semester,
			a.DueDate,
			authorName,
			authorEmail,
			attachments,
			a.CreatedAt.In(s.loc).Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheetName, cell("A", row), &values); err != nil {
			s.logger.Error("写入作业行失败", zap.String("id", a.ID), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	s.logger.Info("作业导出完成", zap.Int("rows", len(list)))
	return buf, exportFilename("assignments", req, "xlsx"), nil
}

// ═══════════════════════════════════════════════════════════
// ExportLectures — 导出讲座为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 讲座的 date / start_time / end_time 为自由文本，
// 按 export.timezone 解析；无法解析的讲座跳过并记录警告。

var (
	lectureDateLayout  = "2006-01-02"
	lectureClockLayout = []string{"15:04", "15:04:05"}
)

func (s *exportService) ExportLectures(ctx context.Context, req *dto.ExportFilterRequest) (*bytes.Buffer, string, error) {
	filters := &repository.LectureListFilters{
		Department: req.Department,
		Semester:   req.Semester,
	}

	list, err := s.repo.Lecture.List(ctx, filters, 0, s.maxRows)
	if err != nil {
		s.logger.Error("查询导出讲座失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//uni-manage//lectures//EN")
	cal.SetXWRCalName("Lectures")
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.now().UTC()
	exported := 0
	for i := range list {
		l := &list[i]

		start, end, err := s.lectureWindow(l)
		if err != nil {
			s.logger.Warn("讲座时间无法解析，已跳过",
				zap.String("id", l.ID),
				zap.String("date", l.Date),
				zap.String("start_time", l.StartTime),
				zap.String("end_time", l.EndTime),
				zap.Error(err),
			)
			continue
		}

		event := cal.AddEvent(l.ID + "@uni-manage")
		event.SetDtStampTime(stamp)
		event.SetCreatedTime(l.CreatedAt)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s (%s)", l.Title, l.Subject))
		event.SetLocation(l.Location)
		event.SetDescription(l.Description)
		if l.Professor != nil {
			event.SetOrganizer("mailto:"+l.Professor.Email, ics.WithCN(l.Professor.Name))
		}
		exported++
	}

	if exported == 0 {
		return nil, "", ErrExportNoLectures
	}

	buf := bytes.NewBufferString(cal.Serialize())

	s.logger.Info("讲座导出完成", zap.Int("events", exported), zap.Int("skipped", len(list)-exported))
	return buf, exportFilename("lectures", req, "ics"), nil
}

// lectureWindow 将讲座的文本日期与时间解析为时间区间
func (s *exportService) lectureWindow(l *model.Lecture) (time.Time, time.Time, error) {
	start, err := s.parseLectureTime(l.Date, l.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := s.parseLectureTime(l.Date, l.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("结束时间 %s 不晚于开始时间 %s", l.EndTime, l.StartTime)
	}
	return start, end, nil
}

func (s *exportService) parseLectureTime(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	var lastErr error
	for _, layout := range lectureClockLayout {
		t, err := time.ParseInLocation(lectureDateLayout+" "+layout, date+" "+clock, s.loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ── 辅助函数 ──

// exportFilename 生成形如 assignments_CS_2024-Fall.xlsx 的文件名
func exportFilename(prefix string, req *dto.ExportFilterRequest, ext string) string {
	parts := []string{prefix}
	for _, p := range []string{req.Department, req.Semester} {
		if p = sanitizeFilenamePart(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_") + "." + ext
}

func sanitizeFilenamePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		case r == ' ' || r == '_':
			return '-'
		default:
			return -1
		}
	}, strings.TrimSpace(s))
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
