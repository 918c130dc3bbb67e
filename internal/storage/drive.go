package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const driveFolderName = "Podcast"

// Drive publishes artifacts into a named folder on Google Drive and makes
// them world-readable. It expects a pre-authorized OAuth token on disk; it
// does not run an authorization flow itself.
type Drive struct {
	svc      *drive.Service
	folderID string
}

// NewDrive builds the Drive client from a client-secret file and a token
// file obtained out of band.
func NewDrive(ctx context.Context, credentialsPath, tokenPath string) (*Drive, error) {
	secret, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read drive credentials: %w", err)
	}
	cfg, err := google.ConfigFromJSON(secret, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse drive credentials: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read drive token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("failed to parse drive token: %w", err)
	}

	svc, err := drive.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Drive{svc: svc}, nil
}

// ensureFolder finds or creates the podcast folder and caches its id.
func (d *Drive) ensureFolder(ctx context.Context) (string, error) {
	if d.folderID != "" {
		return d.folderID, nil
	}
	q := fmt.Sprintf("mimeType='application/vnd.google-apps.folder' and name='%s' and trashed=false", driveFolderName)
	list, err := d.svc.Files.List().Q(q).Spaces("drive").Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(list.Files) > 0 {
		d.folderID = list.Files[0].Id
		return d.folderID, nil
	}
	folder, err := d.svc.Files.Create(&drive.File{
		Name:     driveFolderName,
		MimeType: "application/vnd.google-apps.folder",
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	d.folderID = folder.Id
	return d.folderID, nil
}

// findByName returns the id of a non-trashed file with this name in the
// podcast folder, or "" when none exists.
func (d *Drive) findByName(ctx context.Context, folderID, name string) (string, error) {
	q := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false", name, folderID)
	list, err := d.svc.Files.List().Q(q).Spaces("drive").Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

// Publish uploads r as name. An asset is updated in place when an id is
// known or an asset with the same name already exists in the folder; only
// then is a new file created. New files still need MakePublic before their
// URL resolves for anonymous clients.
func (d *Drive) Publish(ctx context.Context, r io.Reader, name, existingID string) (string, string, error) {
	folderID, err := d.ensureFolder(ctx)
	if err != nil {
		return "", "", &PublishError{Name: name, Err: err}
	}

	id := existingID
	if id == "" {
		id, err = d.findByName(ctx, folderID, name)
		if err != nil {
			return "", "", &PublishError{Name: name, Err: err}
		}
	}

	if id != "" {
		if _, err := d.svc.Files.Update(id, &drive.File{}).Media(r).Context(ctx).Do(); err != nil {
			return "", "", &PublishError{Name: name, Err: err}
		}
	} else {
		created, err := d.svc.Files.Create(&drive.File{
			Name:    name,
			Parents: []string{folderID},
		}).Media(r).Fields("id").Context(ctx).Do()
		if err != nil {
			return "", "", &PublishError{Name: name, Err: err}
		}
		id = created.Id
	}

	return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", id), id, nil
}

// MakePublic grants anyone read access to the asset.
func (d *Drive) MakePublic(ctx context.Context, id string) error {
	_, err := d.svc.Permissions.Create(id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		return &PublishError{Name: id, Err: err}
	}
	return nil
}

// Download fetches the contents of a Drive file, used when a task's source
// reference points at Drive.
func (d *Drive) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := d.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
