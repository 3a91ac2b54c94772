// Package car contains the HTTP handlers for the Car resource.
package car

import (
	"log/slog"
	"net/http"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/storage"
	"github.com/IvanLB1405/records-api/internal/types"
	"github.com/IvanLB1405/records-api/internal/utils/request"
	"github.com/IvanLB1405/records-api/internal/utils/response"
)

// New handles POST /api/cars
//
//	{ "brand": "Renault", "model": "Clio", "year": 2020 }  →  201 { "id": 1 }
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a car")

		var req types.CarRequest
		if !request.Decode(w, r, &req) {
			return
		}

		lastID, err := storage.CreateCar(req.Brand, req.Model, req.Year)
		if err != nil {
			slog.Error("error creating car", slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("car created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}

func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a car", slog.Int64("id", id))

		car, err := storage.GetCarByID(id)
		if err != nil {
			slog.Error("error getting car", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, car)
	}
}

func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all cars")

		cars, err := storage.GetCars()
		if err != nil {
			slog.Error("error getting cars", slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, cars)
	}
}

func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a car", slog.Int64("id", id))

		if err := storage.DeleteCarByID(id); err != nil {
			slog.Error("error deleting car", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// Accelerate handles POST /api/cars/{id}/accelerate (no body).
func Accelerate(storage storage.Storage) http.HandlerFunc {
	return apply(storage, "accelerate", (*record.Car).Accelerate)
}

// Brake handles POST /api/cars/{id}/brake (no body). Braking a stopped
// car answers 409 with a "rejected" outcome and speed 0.
func Brake(storage storage.Storage) http.HandlerFunc {
	return apply(storage, "brake", (*record.Car).Brake)
}

func apply(storage storage.Storage, action string, op storage.CarOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := request.PathID(w, r)
		if !ok {
			return
		}
		slog.Info("applying "+action, slog.Int64("id", id))

		car, res, err := storage.ApplyToCar(id, op)
		if err != nil {
			slog.Error("error applying "+action, slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		status := http.StatusOK
		if !res.Applied() {
			slog.Warn(action+" rejected", slog.Int64("id", id), slog.String("reason", res.Reason))
			status = http.StatusConflict
		}

		response.WriteJSON(w, status, types.CarOutcome{
			Car:     car,
			Outcome: types.NewOutcome(res),
		})
	}
}
