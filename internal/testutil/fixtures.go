// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasquery/parser"
	"github.com/erraggy/oasquery/value"
)

// PetStoreYAML is a two-path pet store document used across package tests.
// It defines /pets (get, post) and /pets/{petId} (get), three schemas, and
// two security schemes.
const PetStoreYAML = `openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List all pets
      description: Returns every pet in the store.
      tags:
        - pets
      parameters:
        - name: limit
          in: query
          description: How many pets to return
          schema:
            type: integer
      responses:
        '200':
          description: A page of pets
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/PetsResponse'
        default:
          description: Unexpected error
    post:
      summary: Create a pet
      tags:
        - pets
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/NewPet'
            example:
              name: Rex
      responses:
        '201':
          description: Pet created
        '400':
          description: Invalid input
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        description: The id of the pet
        schema:
          type: integer
    get:
      summary: Info for a specific pet
      tags:
        - pets
      responses:
        '200':
          description: The requested pet
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
              example:
                id: 1
                name: Fluffy
        '404':
          description: Pet not found
components:
  schemas:
    Pet:
      type: object
      description: A pet in the store
      required:
        - id
        - name
      properties:
        id:
          type: integer
        name:
          type: string
        tag:
          type: string
    NewPet:
      type: object
      required:
        - name
      properties:
        name:
          type: string
        tag:
          type: string
    PetsResponse:
      type: array
      items:
        $ref: '#/components/schemas/Pet'
  securitySchemes:
    ApiKeyAuth:
      type: apiKey
      in: header
      name: X-API-Key
      description: Key issued to partners
    BearerAuth:
      type: http
      scheme: bearer
      bearerFormat: JWT
`

// WriteTempFile writes content to a file named name inside a per-test
// temporary directory and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WritePetStore writes PetStoreYAML to a temporary file and returns its path.
func WritePetStore(t *testing.T) string {
	t.Helper()
	return WriteTempFile(t, "petstore.yaml", PetStoreYAML)
}

// LoadYAML parses an inline document and returns its root.
func LoadYAML(t *testing.T, doc string) value.Value {
	t.Helper()

	result, err := parser.ParseWithOptions(parser.WithBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("Failed to parse test document: %v", err)
	}
	return result.Document
}

// LoadPetStore parses PetStoreYAML and returns its root.
func LoadPetStore(t *testing.T) value.Value {
	t.Helper()
	return LoadYAML(t, PetStoreYAML)
}
