package mobile

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"assetgen/internal/image"
	"assetgen/internal/manifest"
	"assetgen/internal/services"
)

// AssetControl is the gomobile entry point. Methods take and return only
// strings and bools so they bind cleanly to Java and Objective-C.
type AssetControl struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewAssetControl() *AssetControl {
	return &AssetControl{}
}

// EnsureAssets provisions the manifest at manifestPath (the built-in one when
// empty) into assetsDir and returns the console notices, or an error message.
func (ac *AssetControl) EnsureAssets(assetsDir string, manifestPath string, renderLabels bool) string {
	assets, err := manifest.Resolve(manifestPath)
	if err != nil {
		return fmt.Sprintf("Error loading manifest: %v", err)
	}

	ac.mu.Lock()
	if ac.cancel != nil {
		ac.mu.Unlock()
		return "Provisioning already running"
	}
	ctx, cancel := context.WithCancel(context.Background())
	ac.cancel = cancel
	ac.mu.Unlock()

	defer func() {
		ac.mu.Lock()
		ac.cancel = nil
		ac.mu.Unlock()
		cancel()
	}()

	var out strings.Builder
	provisioner := services.NewProvisioner(image.NewProcessor("", renderLabels), &out)
	if _, err := provisioner.EnsureAssets(ctx, assets, assetsDir); err != nil {
		log.Printf("Error provisioning assets: %v", err)
		return out.String() + fmt.Sprintf("Error: %v", err)
	}

	return out.String()
}

func (ac *AssetControl) Stop() {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	if ac.cancel != nil {
		ac.cancel()
		log.Println("Provisioning stopped by user")
	}
}
