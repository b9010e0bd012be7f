package routes

import (
	"github.com/Sayed036/WoodLand-Hospital/authentication"
	"github.com/Sayed036/WoodLand-Hospital/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRoutes creates the gin engine and registers the routes for
// every actor.
func SetupRoutes() *gin.Engine {
	r := gin.Default()

	// public
	r.GET("/doctors", controllers.DoctorList)
	r.GET("/doctors/:speciality", controllers.DoctorsBySpeciality)

	// patient routes
	r.POST("/user/register", controllers.PatientSignup)
	r.POST("/user/login", controllers.PatientLogin)

	user := r.Group("/user")
	user.Use(authentication.PatientAuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PATCH("/profile", controllers.UpdateProfile)
		user.POST("/book-appointment", controllers.BookAppointment)
		user.GET("/appointments", controllers.ListAppointments)
		user.POST("/cancel-appointment", controllers.CancelAppointment)
		user.POST("/payment-razorpay", controllers.PayRazorpay)
		user.POST("/verify-razorpay", controllers.VerifyRazorpay)
		user.GET("/appointment/:id/receipt", controllers.AppointmentReceipt)
		user.GET("/logout", controllers.PatientLogout)
	}

	// doctor routes
	r.POST("/doctor/login", controllers.DoctorLogin)

	doctor := r.Group("/doctor")
	doctor.Use(authentication.DoctorAuthMiddleware())
	{
		doctor.GET("/appointments", controllers.DoctorAppointments)
		doctor.POST("/complete-appointment", controllers.CompleteAppointment)
		doctor.POST("/cancel-appointment", controllers.DoctorCancelAppointment)
		doctor.POST("/change-availability", controllers.ChangeAvailability)
		doctor.GET("/dashboard", controllers.DoctorDashboardView)
		doctor.GET("/profile", controllers.DoctorProfile)
		doctor.PATCH("/profile", controllers.UpdateDoctorProfile)
		doctor.GET("/logout", controllers.DoctorLogout)
	}

	// admin routes
	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware())
	{
		admin.POST("/add-doctor", controllers.AddDoctor)
		admin.GET("/doctors", controllers.AllDoctors)
		admin.POST("/change-availability", controllers.AdminChangeAvailability)
		admin.GET("/appointments", controllers.AdminAppointments)
		admin.POST("/cancel-appointment", controllers.AdminCancelAppointment)
		admin.GET("/dashboard", controllers.AdminDashboardView)
		admin.GET("/logout", controllers.AdminLogout)
	}

	return r
}
