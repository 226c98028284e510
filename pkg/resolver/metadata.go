package resolver

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/funtime/mvnfetch/pkg/artifact"
)

const metadataFile = "maven-metadata.xml"

// snapshotMetadata is the subset of a version-level maven-metadata.xml
// needed to name SNAPSHOT files.
type snapshotMetadata struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Versioning struct {
		Snapshot struct {
			Timestamp   string `xml:"timestamp"`
			BuildNumber int    `xml:"buildNumber"`
			LocalCopy   bool   `xml:"localCopy"`
		} `xml:"snapshot"`
		LastUpdated      string            `xml:"lastUpdated"`
		SnapshotVersions []snapshotVersion `xml:"snapshotVersions>snapshotVersion"`
	} `xml:"versioning"`
}

type snapshotVersion struct {
	Classifier string `xml:"classifier"`
	Extension  string `xml:"extension"`
	Value      string `xml:"value"`
	Updated    string `xml:"updated"`
}

func parseMetadata(data []byte) (*snapshotMetadata, error) {
	var md snapshotMetadata
	if err := xml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parse %s: %w", metadataFile, err)
	}
	return &md, nil
}

// fileVersion returns the version that names c's file on the remote.
//
// Maven 3 metadata lists one snapshotVersion per classifier/extension.
// Older metadata only carries the latest timestamp and build number, which
// apply to every file. Without either (non-unique snapshots) the file keeps
// the plain SNAPSHOT version.
func (md *snapshotMetadata) fileVersion(c artifact.Coordinate) string {
	for _, sv := range md.Versioning.SnapshotVersions {
		if sv.Classifier == c.Classifier && sv.Extension == c.Extension && sv.Value != "" {
			return sv.Value
		}
	}
	snap := md.Versioning.Snapshot
	if snap.Timestamp != "" && snap.BuildNumber > 0 {
		base := strings.TrimSuffix(c.Version, artifact.SnapshotSuffix)
		return fmt.Sprintf("%s-%s-%d", base, snap.Timestamp, snap.BuildNumber)
	}
	return c.Version
}
