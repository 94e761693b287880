package handlers

import (
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/suifund/crowdfunding-gobackend/internal/middlewares"
	"go.uber.org/zap"
)

// RouterDeps bundles what NewRouter wires together
type RouterDeps struct {
	Campaigns    *CampaignHandler
	Donations    *DonationHandler
	Transactions *TransactionHandler
	CORSOrigins  []string
	Logger       *zap.Logger
}

// NewRouter builds the API router wrapped in request logging, CORS and panic
// recovery.
func NewRouter(deps RouterDeps) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Crowdfunding Backend Running!"))
	}).Methods("GET", "HEAD")
	router.HandleFunc("/api/test", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Server is alive!",
			"time":    time.Now().UTC(),
		})
	}).Methods("GET")

	router.HandleFunc("/api/home_campaigns", deps.Campaigns.HomeCampaigns).Methods("GET")
	// must precede /api/campaigns/{identifier}
	router.HandleFunc("/api/campaigns/user/{address}", deps.Campaigns.CampaignsByUser).Methods("GET")
	router.HandleFunc("/api/campaigns", deps.Campaigns.CreateCampaign).Methods("POST")
	router.HandleFunc("/api/campaigns/donate/{identifier}", deps.Donations.Donate).Methods("POST")
	router.HandleFunc("/api/campaigns/{identifier}", deps.Campaigns.GetCampaign).Methods("GET")
	router.HandleFunc("/api/campaigns/{identifier}", deps.Campaigns.UpdateCampaign).Methods("PUT")
	router.HandleFunc("/api/campaigns/{identifier}", deps.Campaigns.DeleteCampaign).Methods("DELETE")

	router.HandleFunc("/api/transactions/user/{address}", deps.Transactions.TransactionsByUser).Methods("GET")

	router.Use(mux.MiddlewareFunc(middlewares.LoggingMiddleware(deps.Logger)))

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(deps.CORSOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
		gorillahandlers.AllowCredentials(),
	)
	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(zap.NewStdLog(deps.Logger)),
		gorillahandlers.PrintRecoveryStack(true),
	)
	return recovery(cors(router))
}
