package ownerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/KelMarrocos/CarRental/middleware"
	"github.com/KelMarrocos/CarRental/models"
)

// GET /api/owner/bookings/export
func ExportBookingsToExcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok || !user.IsOwner() {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var bookings []models.Booking
		if err := db.Preload("Car").Preload("User").
			Where("owner_id = ?", user.ID).
			Order("created_at desc").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Bookings")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Car", "Renter", "Email", "PickupDate", "ReturnDate",
			"Status", "Price", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, b := range bookings {
			row := sheet.AddRow()

			row.AddCell().SetValue(b.ID)
			row.AddCell().SetValue(b.Car.Brand + " " + b.Car.Model)
			row.AddCell().SetValue(b.User.Name)
			row.AddCell().SetValue(b.User.Email)
			row.AddCell().SetValue(b.PickupDate.Format("2006-01-02"))
			row.AddCell().SetValue(b.ReturnDate.Format("2006-01-02"))
			row.AddCell().SetValue(string(b.Status))
			row.AddCell().SetValue(b.Price)
			row.AddCell().SetValue(b.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=bookings.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
