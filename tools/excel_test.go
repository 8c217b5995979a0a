package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type excelRow struct {
	Name     string `excel:"名称"`
	Votes    int    `excel:"票数"`
	Internal string `excel:"-"`
	NoTag    string
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := ExportToExcel(f, "统计", []excelRow{
		{Name: "项目一", Votes: 5, Internal: "隐藏", NoTag: "x"},
		{Name: "项目二", Votes: 0, Internal: "隐藏", NoTag: "y"},
	})
	require.NoError(t, err)

	rows, err := f.GetRows("统计")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// "-" 字段不导出，无标签字段用字段名作表头
	require.Equal(t, []string{"名称", "票数", "NoTag"}, rows[0])
	require.Equal(t, []string{"项目一", "5", "x"}, rows[1])
	require.Equal(t, []string{"项目二", "0", "y"}, rows[2])
}

func TestExportToExcelEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	// 空数据也建表写表头，导出的文件不会缺工作表
	require.NoError(t, ExportToExcel(f, "统计", []excelRow{}))

	rows, err := f.GetRows("统计")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"名称", "票数", "NoTag"}, rows[0])
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.Error(t, ExportToExcel(f, "统计", excelRow{}))
	require.Error(t, ExportToExcel(f, "统计", []int{1, 2}))
}
