package stats

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"capstone-showcase/internal/global/database"
	"capstone-showcase/internal/model"
	"capstone-showcase/test"
	"capstone-showcase/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportExcel(t *testing.T) {
	test.Setup(t)
	(&ModuleStats{}).Init()

	team := model.Team{Name: "Team Alpha"}
	require.NoError(t, database.DB.Create(&team).Error)
	proj := model.Project{
		TeamID: team.ID, Title: "智能垃圾桶", Summary: "s", Description: "d",
		Building: "一号楼", Votes: 5,
	}
	require.NoError(t, database.DB.Create(&proj).Error)
	require.NoError(t, database.DB.Create(&model.Feedback{
		ProjectID: proj.ID, Content: "不错", Author: "路人甲",
	}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	exportExcel(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, tools.ExcelContentType, w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	// 导出内容能被重新打开并包含统计行
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("项目统计")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "项目名称", rows[0][1])
	require.Equal(t, "智能垃圾桶", rows[1][1])
	require.Equal(t, "5", rows[1][5])
}
