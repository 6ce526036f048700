package handlers

import (
	"log"
	"math/rand"
	"net/http"

	"petnourish-service/internal/api/dto"
	"petnourish-service/internal/prefs"
	"petnourish-service/internal/services"
)

// PrefsHandler exposes destination suggestions, the traffic profile, and the
// onboarding flag.
type PrefsHandler struct {
	Prefs *prefs.Store

	// Rng drives the synthetic traffic status; defaults to the package
	// source when nil.
	Rng *rand.Rand
}

func (h *PrefsHandler) statusFor(timeOfDay string) services.TrafficStatus {
	if h.Rng != nil {
		return services.TrafficStatusFor(timeOfDay, h.Rng)
	}
	return services.TrafficStatusFor(timeOfDay, rand.New(rand.NewSource(rand.Int63())))
}

// Suggestions returns destination suggestions for a query prefix.
func (h *PrefsHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	res := dto.SuggestionsResponse{
		Suggestions: services.Suggestions(r.Context(), h.Prefs, r.URL.Query().Get("q")),
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Traffic reads (GET) or updates (PUT) the traffic time-of-day preference.
// Reads include the rendering profile and a fresh synthetic status.
func (h *PrefsHandler) Traffic(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		t := h.Prefs.TrafficTime(r.Context())
		h.writeTraffic(w, r, t)

	case http.MethodPut:
		var req dto.TrafficRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		switch req.Time {
		case "morning", "noon", "night":
		default:
			writeError(w, r, http.StatusBadRequest, "time must be morning, noon, or night")
			return
		}

		if err := h.Prefs.SetTrafficTime(r.Context(), req.Time); err != nil {
			log.Printf("set traffic time failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		h.writeTraffic(w, r, req.Time)

	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *PrefsHandler) writeTraffic(w http.ResponseWriter, r *http.Request, timeOfDay string) {
	profile := services.ProfileFor(timeOfDay)
	status := h.statusFor(timeOfDay)

	writeJSON(w, r, http.StatusOK, dto.TrafficResponse{
		Time:    timeOfDay,
		Label:   profile.Label,
		Weight:  profile.Weight,
		Opacity: profile.Opacity,
		Level:   status.Level,
		Note:    status.Note,
	})
}

// Onboarding reads (GET) or records (PUT) onboarding completion.
func (h *PrefsHandler) Onboarding(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, r, http.StatusOK, dto.OnboardingResponse{Done: h.Prefs.OnboardingDone(r.Context())})

	case http.MethodPut:
		var req dto.OnboardingResponse
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.Prefs.SetOnboardingDone(r.Context(), req.Done); err != nil {
			log.Printf("set onboarding failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, r, http.StatusOK, req)

	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
