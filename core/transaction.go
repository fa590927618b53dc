package core

import "time"

// TransactionRow 是 CSV 中的一行交易记录，解析后不可变。
// InvoiceNo / Description / Quantity / Country / InvoiceDate 为必需列；
// 其余字段在对应列存在时填充。
type TransactionRow struct {
	InvoiceNo   string
	StockCode   string
	Description string
	Quantity    int
	InvoiceDate time.Time
	UnitPrice   float64
	CustomerID  string
	Country     string
}

// CSV 列名（与常见的 Online Retail 数据集保持一致）
const (
	ColumnInvoiceNo   = "InvoiceNo"
	ColumnStockCode   = "StockCode"
	ColumnDescription = "Description"
	ColumnQuantity    = "Quantity"
	ColumnInvoiceDate = "InvoiceDate"
	ColumnUnitPrice   = "UnitPrice"
	ColumnCustomerID  = "CustomerID"
	ColumnCountry     = "Country"
)

// RequiredColumns 是解析时必须存在的列。
var RequiredColumns = []string{
	ColumnInvoiceNo,
	ColumnDescription,
	ColumnQuantity,
	ColumnCountry,
	ColumnInvoiceDate,
}
