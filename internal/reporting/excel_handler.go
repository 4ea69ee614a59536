package reporting

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/export?month=
// Streams the monthly (or all-time) report as an .xlsx workbook with an
// orders sheet and the two rollup sheets.
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, products, err := loadReportData()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load report data")
		}

		month := c.Query("month")
		filtered := FilterOrders(orders, Filter{Month: month})
		summary := Summarize(filtered, products)

		f := excelize.NewFile()
		defer f.Close()

		ordersSheet := "Orders"
		f.SetSheetName("Sheet1", ordersSheet)
		headers := []string{"Date", "Customer", "Phone", "Status", "Packaging", "Delivery", "Discount", "Total"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(ordersSheet, cell, h)
		}
		for rowIdx, order := range filtered {
			values := []interface{}{
				order.Date, order.CustomerName, order.CustomerPhone, string(order.Status),
				order.PackagingCost, order.DeliveryCost, order.Discount, order.TotalAmount,
			}
			for colIdx, v := range values {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				f.SetCellValue(ordersSheet, cell, v)
			}
		}

		productsSheet := "Products"
		f.NewSheet(productsSheet)
		for i, h := range []string{"Product", "Quantity", "Revenue"} {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(productsSheet, cell, h)
		}
		for rowIdx, stat := range summary.TopProducts {
			f.SetCellValue(productsSheet, fmt.Sprintf("A%d", rowIdx+2), stat.Name)
			f.SetCellValue(productsSheet, fmt.Sprintf("B%d", rowIdx+2), stat.Quantity)
			f.SetCellValue(productsSheet, fmt.Sprintf("C%d", rowIdx+2), stat.Revenue)
		}

		customersSheet := "Customers"
		f.NewSheet(customersSheet)
		for i, h := range []string{"Customer", "Orders", "Revenue"} {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(customersSheet, cell, h)
		}
		for rowIdx, stat := range summary.TopCustomers {
			f.SetCellValue(customersSheet, fmt.Sprintf("A%d", rowIdx+2), stat.Name)
			f.SetCellValue(customersSheet, fmt.Sprintf("B%d", rowIdx+2), stat.Orders)
			f.SetCellValue(customersSheet, fmt.Sprintf("C%d", rowIdx+2), stat.Revenue)
		}

		summarySheet := "Summary"
		f.NewSheet(summarySheet)
		summaryRows := [][]interface{}{
			{"Total revenue", summary.TotalRevenue},
			{"Total orders", summary.TotalOrders},
			{"Delivered orders", summary.DeliveredOrders},
			{"Average order value", summary.AverageOrderValue},
		}
		for rowIdx, pair := range summaryRows {
			f.SetCellValue(summarySheet, fmt.Sprintf("A%d", rowIdx+1), pair[0])
			f.SetCellValue(summarySheet, fmt.Sprintf("B%d", rowIdx+1), pair[1])
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build the workbook")
		}

		label := month
		if label == "" {
			label = "all-" + time.Now().Format("2006-01-02")
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="bakery-report-%s.xlsx"`, label))
		return c.Send(buf.Bytes())
	}
}
