package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IvanLB1405/records-api/internal/record"
	"github.com/IvanLB1405/records-api/internal/types"
)

// Grades are stored as a JSON array in a TEXT column. A nil slice is
// written as [] so the column never holds "null".
func encodeGrades(grades []float64) (string, error) {
	if grades == nil {
		grades = []float64{}
	}
	b, err := json.Marshal(grades)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanStudent reads (id, name, surname, grades) and rebuilds the view
// through record.Student so the average is always derived from the
// stored grades.
func scanStudent(row scanner) (types.Student, error) {
	var (
		id            int64
		name, surname string
		rawGrades     string
	)
	if err := row.Scan(&id, &name, &surname, &rawGrades); err != nil {
		return types.Student{}, err
	}

	var grades []float64
	if err := json.Unmarshal([]byte(rawGrades), &grades); err != nil {
		return types.Student{}, fmt.Errorf("decode grades for student %d: %w", id, err)
	}

	student := record.NewStudent(name, surname)
	student.SetGrades(grades)
	return types.NewStudent(id, student), nil
}

func (s *SQLite) CreateStudent(name, surname string, grades []float64) (int64, error) {
	encoded, err := encodeGrades(grades)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: encode grades: %w", err)
	}

	stmt, err := s.Db.Prepare("INSERT INTO students (name, surname, grades) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, surname, encoded)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return lastID, nil
}

func (s *SQLite) GetStudentByID(id int64) (types.Student, error) {
	row := s.Db.QueryRow("SELECT id, name, surname, grades FROM students WHERE id = ? LIMIT 1", id)
	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, notFound("GetStudentByID", id)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

func (s *SQLite) GetStudents() ([]types.Student, error) {
	rows, err := s.Db.Query("SELECT id, name, surname, grades FROM students ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

func (s *SQLite) SetStudentGrades(id int64, grades []float64) (types.Student, error) {
	encoded, err := encodeGrades(grades)
	if err != nil {
		return types.Student{}, fmt.Errorf("SetStudentGrades: encode grades: %w", err)
	}

	result, err := s.Db.Exec("UPDATE students SET grades = ? WHERE id = ?", encoded, id)
	if err != nil {
		return types.Student{}, fmt.Errorf("SetStudentGrades: exec: %w", err)
	}
	if err := checkAffected(result, "SetStudentGrades", id); err != nil {
		return types.Student{}, err
	}

	// Re-fetch so we return exactly what is stored in the DB.
	return s.GetStudentByID(id)
}

func (s *SQLite) DeleteStudentByID(id int64) error {
	result, err := s.Db.Exec("DELETE FROM students WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}
	return checkAffected(result, "DeleteStudentByID", id)
}
