package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amit20042003/Liberary/internal/app/models"
	"github.com/amit20042003/Liberary/internal/pkg/apperrors"
)

const studentColumns = `
	id, account_id, student_id, title, name, father_name, mobile, photo_url,
	admission_type, shift, seat_number, admission_date, fee_amount, next_due_date,
	payment_history, received_credit_log, status, departure_date, departure_reason, transfer_log`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	payments, credits, transfer, err := marshalLedgerFields(student)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO students (
			account_id, student_id, title, name, father_name, mobile, photo_url,
			admission_type, shift, seat_number, admission_date, fee_amount, next_due_date,
			payment_history, received_credit_log, status, departure_date, departure_reason, transfer_log
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		student.AccountID, student.StudentID, student.Title, student.Name,
		student.FatherName, student.Mobile, student.PhotoURL,
		student.AdmissionType, student.Shift, student.SeatNumber,
		student.AdmissionDate, student.FeeAmount, student.NextDueDate,
		payments, credits, student.Status,
		student.DepartureDate, student.DepartureReason, transfer,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student by its public ID within an account
func (r *StudentRepository) GetByStudentID(ctx context.Context, accountID int64, studentID string) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE account_id = $1 AND student_id = $2
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, accountID, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ListByAccount retrieves all students belonging to an account, newest first
func (r *StudentRepository) ListByAccount(ctx context.Context, accountID int64) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE account_id = $1
		ORDER BY id DESC
	`
	return r.queryStudents(ctx, query, accountID)
}

// ListByStatus retrieves an account's students filtered by lifecycle status
func (r *StudentRepository) ListByStatus(ctx context.Context, accountID int64, status models.StudentStatus) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE account_id = $1 AND status = $2
		ORDER BY id DESC
	`
	return r.queryStudents(ctx, query, accountID, status)
}

// Search retrieves an account's students whose name, mobile or public ID
// contains the term, newest first
func (r *StudentRepository) Search(ctx context.Context, accountID int64, term string) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE account_id = $1 AND (name ILIKE $2 OR mobile ILIKE $2 OR student_id ILIKE $2)
		ORDER BY id DESC
	`
	return r.queryStudents(ctx, query, accountID, "%"+term+"%")
}

// MaxNumericID returns the highest numeric public ID in use for an account,
// 0 when the account has no students yet
func (r *StudentRepository) MaxNumericID(ctx context.Context, accountID int64) (int, error) {
	var maxID int
	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(student_id FROM 2) AS INTEGER)), 0)
		FROM students
		WHERE account_id = $1
	`
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("error finding max student id: %w", err)
	}
	return maxID, nil
}

// Update persists the mutable fields of a student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	cmdTag, err := r.execUpdate(ctx, r.db, student)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdatePair persists two student records inside one transaction. Departure
// with a credit transfer touches the departing and the credited record; the
// pair commits or rolls back together so a partial write cannot leave the
// ledger inconsistent.
func (r *StudentRepository) UpdatePair(ctx context.Context, first, second *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, student := range []*models.Student{first, second} {
		cmdTag, err := r.execUpdate(ctx, tx, student)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a student record permanently. The seat is freed implicitly:
// occupancy is derived from the remaining active students.
func (r *StudentRepository) Delete(ctx context.Context, accountID int64, studentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE account_id = $1 AND student_id = $2`, accountID, studentID)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *StudentRepository) execUpdate(ctx context.Context, q execer, student *models.Student) (pgconn.CommandTag, error) {
	payments, credits, transfer, err := marshalLedgerFields(student)
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	query := `
		UPDATE students
		SET title = $1, name = $2, father_name = $3, mobile = $4, photo_url = $5,
			seat_number = $6, next_due_date = $7,
			payment_history = $8, received_credit_log = $9, status = $10,
			departure_date = $11, departure_reason = $12, transfer_log = $13
		WHERE account_id = $14 AND student_id = $15
	`

	cmdTag, err := q.Exec(ctx, query,
		student.Title, student.Name, student.FatherName, student.Mobile, student.PhotoURL,
		student.SeatNumber, student.NextDueDate,
		payments, credits, student.Status,
		student.DepartureDate, student.DepartureReason, transfer,
		student.AccountID, student.StudentID,
	)
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("error updating student: %w", err)
	}
	return cmdTag, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// scanStudent reads one student row, decoding the JSONB ledger columns
func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		student  models.Student
		shift    *string
		payments []byte
		credits  []byte
		transfer []byte
	)

	err := row.Scan(
		&student.ID, &student.AccountID, &student.StudentID,
		&student.Title, &student.Name, &student.FatherName, &student.Mobile, &student.PhotoURL,
		&student.AdmissionType, &shift, &student.SeatNumber,
		&student.AdmissionDate, &student.FeeAmount, &student.NextDueDate,
		&payments, &credits, &student.Status,
		&student.DepartureDate, &student.DepartureReason, &transfer,
	)
	if err != nil {
		return nil, err
	}

	if shift != nil {
		s := models.Shift(*shift)
		student.Shift = &s
	}

	student.PaymentHistory = []models.Payment{}
	if len(payments) > 0 {
		if err := json.Unmarshal(payments, &student.PaymentHistory); err != nil {
			return nil, fmt.Errorf("error decoding payment history: %w", err)
		}
	}
	student.ReceivedCreditLog = []models.CreditEntry{}
	if len(credits) > 0 {
		if err := json.Unmarshal(credits, &student.ReceivedCreditLog); err != nil {
			return nil, fmt.Errorf("error decoding credit log: %w", err)
		}
	}
	if len(transfer) > 0 {
		student.TransferLog = &models.TransferLog{}
		if err := json.Unmarshal(transfer, student.TransferLog); err != nil {
			return nil, fmt.Errorf("error decoding transfer log: %w", err)
		}
	}

	return &student, nil
}

// marshalLedgerFields encodes the JSONB ledger columns for writes
func marshalLedgerFields(student *models.Student) (payments, credits, transfer []byte, err error) {
	payments, err = json.Marshal(student.PaymentHistory)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error encoding payment history: %w", err)
	}
	credits, err = json.Marshal(student.ReceivedCreditLog)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error encoding credit log: %w", err)
	}
	if student.TransferLog != nil {
		transfer, err = json.Marshal(student.TransferLog)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error encoding transfer log: %w", err)
		}
	}
	return payments, credits, transfer, nil
}
