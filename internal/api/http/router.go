package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"spacebook-backend/internal/media"
	"spacebook-backend/internal/security"
	"spacebook-backend/internal/service"
)

// NewRouter wires all endpoints. Auth endpoints and media downloads are
// public; everything else requires a bearer token.
func NewRouter(
	authSvc service.AuthService,
	bookingSvc service.BookingService,
	branchSvc service.BranchService,
	campusSvc service.CampusService,
	librarySvc service.LibraryService,
	spaceSvc service.SpaceService,
	mediaStore *media.Store,
	tokens security.TokenManager,
) http.Handler {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	authHandler := NewAuthHandler(authSvc)
	r.HandleFunc("/api/v1/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")

	mediaHandler := NewMediaHandler(mediaStore)
	r.HandleFunc("/spacebook/media/{kind}/{file}", mediaHandler.Download).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	branchHandler := NewBranchHandler(branchSvc)
	api.HandleFunc("/branches", branchHandler.List).Methods("GET")
	api.HandleFunc("/branches", branchHandler.Create).Methods("POST")
	api.HandleFunc("/branches/{code}", branchHandler.Get).Methods("GET")
	api.HandleFunc("/branches/{code}", branchHandler.Update).Methods("PUT")
	api.HandleFunc("/branches/{code}", branchHandler.Delete).Methods("DELETE")
	api.HandleFunc("/branches/{code}/image", branchHandler.UploadImage).Methods("POST")

	campusHandler := NewCampusHandler(campusSvc)
	api.HandleFunc("/campuses", campusHandler.List).Methods("GET")
	api.HandleFunc("/campuses", campusHandler.Create).Methods("POST")
	api.HandleFunc("/campuses/{code}", campusHandler.Get).Methods("GET")
	api.HandleFunc("/campuses/{code}", campusHandler.Update).Methods("PUT")
	api.HandleFunc("/campuses/{code}", campusHandler.Delete).Methods("DELETE")

	libraryHandler := NewLibraryHandler(librarySvc)
	api.HandleFunc("/libraries", libraryHandler.List).Methods("GET")
	api.HandleFunc("/libraries", libraryHandler.Create).Methods("POST")
	api.HandleFunc("/libraries/{code}", libraryHandler.Get).Methods("GET")
	api.HandleFunc("/libraries/{code}", libraryHandler.Update).Methods("PUT")
	api.HandleFunc("/libraries/{code}", libraryHandler.Delete).Methods("DELETE")
	api.HandleFunc("/libraries/{code}/image", libraryHandler.UploadImage).Methods("POST")

	spaceHandler := NewSpaceHandler(spaceSvc)
	api.HandleFunc("/spaces", spaceHandler.List).Methods("GET")
	api.HandleFunc("/spaces", spaceHandler.Create).Methods("POST")
	api.HandleFunc("/spaces/{id}", spaceHandler.Get).Methods("GET")
	api.HandleFunc("/spaces/{id}", spaceHandler.Update).Methods("PUT")
	api.HandleFunc("/spaces/{id}", spaceHandler.Delete).Methods("DELETE")
	api.HandleFunc("/spaces/{id}/image", spaceHandler.UploadImage).Methods("POST")

	bookingHandler := NewBookingHandler(bookingSvc)
	api.HandleFunc("/spaces/{id}/book", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/bookings", bookingHandler.ListMine).Methods("GET")
	api.HandleFunc("/bookings/pending", bookingHandler.ListPending).Methods("GET")
	api.HandleFunc("/bookings/report", bookingHandler.Report).Methods("GET")
	api.HandleFunc("/bookings/{id}/approve", bookingHandler.Approve).Methods("POST")
	api.HandleFunc("/bookings/{id}/reject", bookingHandler.Reject).Methods("POST")
	api.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods("POST")
	api.HandleFunc("/bookings/{id}/pay/start", bookingHandler.StartPayment).Methods("POST")
	api.HandleFunc("/bookings/{id}/pay/confirm", bookingHandler.ConfirmPayment).Methods("POST")

	return r
}
