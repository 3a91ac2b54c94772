package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/storage"
	"github.com/IvanLB1405/records-api/internal/types"
)

// CreateCar inserts a stopped car and returns its generated id.
func (s *SQLite) CreateCar(brand, model string, year int) (int64, error) {
	stmt, err := s.Db.Prepare("INSERT INTO cars (brand, model, year, speed) VALUES (?, ?, ?, 0)")
	if err != nil {
		return 0, fmt.Errorf("CreateCar: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(brand, model, year)
	if err != nil {
		return 0, fmt.Errorf("CreateCar: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateCar: last insert id: %w", err)
	}

	return lastID, nil
}

func (s *SQLite) GetCarByID(id int64) (types.Car, error) {
	var car types.Car
	err := s.Db.QueryRow(
		"SELECT id, brand, model, year, speed FROM cars WHERE id = ? LIMIT 1", id,
	).Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Speed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Car{}, notFound("GetCarByID", id)
		}
		return types.Car{}, fmt.Errorf("GetCarByID: scan: %w", err)
	}

	return car, nil
}

func (s *SQLite) GetCars() ([]types.Car, error) {
	rows, err := s.Db.Query("SELECT id, brand, model, year, speed FROM cars ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetCars: query: %w", err)
	}
	defer rows.Close()

	cars := make([]types.Car, 0)
	for rows.Next() {
		var car types.Car
		if err := rows.Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Speed); err != nil {
			return nil, fmt.Errorf("GetCars: scan row: %w", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetCars: rows iteration: %w", err)
	}

	return cars, nil
}

// ApplyToCar is the car counterpart of ApplyToAccount: load, run op,
// write speed back only when op was applied, all in one transaction.
func (s *SQLite) ApplyToCar(id int64, op storage.CarOp) (types.Car, record.Result, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.Car{}, record.Result{}, fmt.Errorf("ApplyToCar: begin: %w", err)
	}
	defer tx.Rollback()

	var (
		brand, model string
		year         int
		speed        int64
	)
	err = tx.QueryRow("SELECT brand, model, year, speed FROM cars WHERE id = ?", id).
		Scan(&brand, &model, &year, &speed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Car{}, record.Result{}, notFound("ApplyToCar", id)
		}
		return types.Car{}, record.Result{}, fmt.Errorf("ApplyToCar: scan: %w", err)
	}

	car := record.NewCar(brand, model, year, speed)
	res := op(car)

	if res.Applied() {
		if _, err := tx.Exec("UPDATE cars SET speed = ? WHERE id = ?", car.Speed(), id); err != nil {
			return types.Car{}, record.Result{}, fmt.Errorf("ApplyToCar: update: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Car{}, record.Result{}, fmt.Errorf("ApplyToCar: commit: %w", err)
	}

	return types.NewCar(id, car), res, nil
}

func (s *SQLite) DeleteCarByID(id int64) error {
	result, err := s.Db.Exec("DELETE FROM cars WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("DeleteCarByID: exec: %w", err)
	}
	return checkAffected(result, "DeleteCarByID", id)
}
