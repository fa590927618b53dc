// Package ingest 将上传的 CSV 解析为强类型的 TransactionRow。
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rushteam/basketkit/core"
)

const utf8BOM = "\ufeff"

// ParseCSV 读取带表头的 CSV，返回按文件顺序排列的交易行。
//
// 以下情况返回 PARSE_ERROR：
//   - 输入为空
//   - CSV 格式错误
//   - 缺少必需列（InvoiceNo / Description / Quantity / Country / InvoiceDate）
//   - Quantity / InvoiceDate / UnitPrice 无法转换
func ParseCSV(r io.Reader) ([]core.TransactionRow, error) {
	if r == nil {
		return nil, core.NewParseError("no input", nil)
	}

	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, core.NewParseError("empty file", nil)
	}
	if err != nil {
		return nil, core.NewParseError("read header", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	rows := make([]core.TransactionRow, 0, 1024)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, core.NewParseError(fmt.Sprintf("line %d", line), err)
		}
		if blank(record) {
			continue
		}

		row, err := cols.parse(record)
		if err != nil {
			return nil, core.NewParseError(fmt.Sprintf("line %d", line), err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// columns 记录每个列名在表头中的位置，-1 表示不存在。
type columns struct {
	invoiceNo, stockCode, description, quantity int
	invoiceDate, unitPrice, customerID, country int
}

func indexColumns(header []string) (*columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var missing []string
	for _, name := range core.RequiredColumns {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewParseError("missing required columns: "+strings.Join(missing, ", "), nil)
	}

	lookup := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}
	return &columns{
		invoiceNo:   lookup(core.ColumnInvoiceNo),
		stockCode:   lookup(core.ColumnStockCode),
		description: lookup(core.ColumnDescription),
		quantity:    lookup(core.ColumnQuantity),
		invoiceDate: lookup(core.ColumnInvoiceDate),
		unitPrice:   lookup(core.ColumnUnitPrice),
		customerID:  lookup(core.ColumnCustomerID),
		country:     lookup(core.ColumnCountry),
	}, nil
}

// parse 将一行记录转换为 TransactionRow。文本列原样保留（"HEART " 与 "HEART" 是不同商品），
// 只有数值与日期列在转换前去掉首尾空白。
func (c *columns) parse(record []string) (core.TransactionRow, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return record[i]
	}
	number := func(i int) string {
		return strings.TrimSpace(field(i))
	}

	qty, err := parseQuantity(number(c.quantity))
	if err != nil {
		return core.TransactionRow{}, fmt.Errorf("column %s: %w", core.ColumnQuantity, err)
	}

	date, err := ParseDayFirst(number(c.invoiceDate))
	if err != nil {
		return core.TransactionRow{}, fmt.Errorf("column %s: %w", core.ColumnInvoiceDate, err)
	}

	var price float64
	if s := number(c.unitPrice); s != "" {
		price, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return core.TransactionRow{}, fmt.Errorf("column %s: invalid number %q", core.ColumnUnitPrice, s)
		}
	}

	return core.TransactionRow{
		InvoiceNo:   field(c.invoiceNo),
		StockCode:   field(c.stockCode),
		Description: field(c.description),
		Quantity:    qty,
		InvoiceDate: date,
		UnitPrice:   price,
		CustomerID:  field(c.customerID),
		Country:     field(c.country),
	}, nil
}

// parseQuantity 接受整数，以及 "6.0" 这类整数值的浮点表示。空值视为 0。
// 超出 int64 范围的值视为无效，不做截断。
func parseQuantity(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
