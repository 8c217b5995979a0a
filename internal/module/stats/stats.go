package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/global/response"
	"capstone-showcase/internal/model"
	"capstone-showcase/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportRow 导出表格的一行，excel 标签为表头
type exportRow struct {
	ProjectID     uint   `excel:"项目ID"`
	Title         string `excel:"项目名称"`
	TeamName      string `excel:"团队"`
	Building      string `excel:"楼栋"`
	Difficulty    string `excel:"难度"`
	Votes         int    `excel:"票数"`
	FeedbackCount int64  `excel:"反馈数"`
	SubmittedAt   string `excel:"提交时间"`
}

// exportExcel 导出项目投票与反馈统计（管理员）
func exportExcel(c *gin.Context) {
	var projects []model.Project
	if err := database.DB.Order("votes DESC, id ASC").Find(&projects).Error; err != nil {
		log.Error("查询项目失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var teams []model.Team
	if err := database.DB.Find(&teams).Error; err != nil {
		log.Error("查询团队失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	teamNames := make(map[uint]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	// 各项目反馈数
	type feedbackCount struct {
		ProjectID uint
		Total     int64
	}
	var counts []feedbackCount
	if err := database.DB.Model(&model.Feedback{}).
		Select("project_id, COUNT(*) AS total").
		Group("project_id").
		Scan(&counts).Error; err != nil {
		log.Error("统计反馈数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	feedbackTotals := make(map[uint]int64, len(counts))
	for _, fc := range counts {
		feedbackTotals[fc.ProjectID] = fc.Total
	}

	rows := make([]exportRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, exportRow{
			ProjectID:     p.ID,
			Title:         p.Title,
			TeamName:      teamNames[p.TeamID],
			Building:      p.Building,
			Difficulty:    p.Difficulty,
			Votes:         p.Votes,
			FeedbackCount: feedbackTotals[p.ID],
			SubmittedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "项目统计"
	if err := tools.ExportToExcel(f, sheet, rows); err != nil {
		log.Error("生成表格失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("showcase_stats_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(os.TempDir(), fileName)
	if err := f.SaveAs(path); err != nil {
		log.Error("保存表格失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	defer os.Remove(path)

	if err := tools.SendStoredFile(c, path, fileName, tools.ExcelContentType); err != nil {
		log.Error("发送表格失败", "error", err)
	}
}
