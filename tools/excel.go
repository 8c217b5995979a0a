package tools

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

// ExportToExcel 把结构体切片写成一张工作表
// excel 标签作表头，"-" 的字段跳过，没写标签的用字段名顶上
func ExportToExcel(f *excelize.File, sheet string, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("导出数据必须是切片，拿到 %s", v.Kind())
	}
	elemType := v.Type().Elem()
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("导出数据必须是结构体切片，拿到 %s", elemType.Kind())
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// 选列：导出的字段下标和表头一次定下来，行写入时复用
	cols := make([]int, 0, elemType.NumField())
	header := make([]interface{}, 0, elemType.NumField())
	for i := 0; i < elemType.NumField(); i++ {
		sf := elemType.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		cols = append(cols, i)
		header = append(header, tag)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for row := 0; row < v.Len(); row++ {
		elem := v.Index(row)
		cells := make([]interface{}, 0, len(cols))
		for _, i := range cols {
			cells = append(cells, elem.Field(i).Interface())
		}
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return nil
}
