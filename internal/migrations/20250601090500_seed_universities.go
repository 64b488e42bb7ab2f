package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedUniversities, downSeedUniversities)
}

func upSeedUniversities(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO universities (id, name, short_name, x, y, color, state) VALUES
		('karl-kumm', 'Karl-Kumm University', 'KKU', 45, 25, 'whispr-purple', 'Vom'),
		('anan', 'ANAN University', 'ANAN', 60, 30, 'whispr-teal', 'Kwall'),
		('plateau-poly', 'Plateau State Polytechnic', 'PLAPOLY', 55, 35, 'whispr-pink', 'Bukuru'),
		('fed-poly-nyak', 'Federal Polytechnic', 'FEDPOLY', 50, 40, 'whispr-blue', 'Nyak Shendam'),
		('animal-health', 'Federal College of Animal Health', 'FCAH', 40, 28, 'whispr-green', 'Vom'),
		('forestry-jos', 'Federal College of Forestry', 'FCF', 52, 32, 'whispr-yellow', 'Jos'),
		('land-resources', 'Federal College of Land Resources Tech', 'FCLRT', 58, 38, 'whispr-orange', 'Kuru'),
		('agric-garkawa', 'Plateau State College of Agriculture', 'PSCA', 65, 45, 'whispr-purple', 'Garkawa'),
		('oswald-shendam', 'Oswald College of Education', 'OCE', 48, 42, 'whispr-teal', 'Shendam'),
		('uniabuja', 'University of Abuja', 'UniAbuja', 35, 50, 'whispr-blue', 'Abuja'),
		('unn', 'University of Nigeria', 'UNN', 70, 60, 'whispr-pink', 'Nsukka'),
		('unilag', 'University of Lagos', 'UNILAG', 25, 70, 'whispr-green', 'Lagos'),
		('uniport', 'University of Port Harcourt', 'UNIPORT', 45, 80, 'whispr-yellow', 'Port Harcourt'),
		('abu', 'Ahmadu Bello University', 'ABU', 30, 20, 'whispr-orange', 'Zaria'),
		('atbu', 'Abubakar Tafawa Balewa University', 'ATBU', 55, 15, 'whispr-purple', 'Bauchi'),
		('ui', 'University of Ibadan', 'UI', 20, 65, 'whispr-teal', 'Ibadan'),
		('delsu', 'Delta State University', 'DELSU', 40, 75, 'whispr-pink', 'Abraka'),
		('absu', 'Abia State University', 'ABSU', 60, 70, 'whispr-blue', 'Uturu')
	ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

func downSeedUniversities(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM universities;`)
	return err
}
