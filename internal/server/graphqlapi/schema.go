// Package graphqlapi declares the typed graph surface for snippets and
// recommendations. It is a thin schema over the same services the REST
// routes use.
package graphqlapi

// Schema is the GraphQL schema served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		snippet(id: ID!): Snippet
		allSnippets: [Snippet!]!
		recommendationsForUser(userId: ID!): [Recommendation!]!
	}

	type Mutation {
		createSnippet(title: String!, content: String!, language: String!, userId: ID!): Snippet!
		likeSnippet(snippetId: ID!): Snippet!
		dislikeSnippet(snippetId: ID!): Snippet!
		saveSnippet(snippetId: ID!): Snippet!
	}

	type Snippet {
		id: ID!
		title: String!
		content: String!
		language: String!
		userId: ID!
		createdAt: String!
		likes: Int!
		dislikes: Int!
		saved: Boolean!
	}

	type Recommendation {
		snippetId: ID!
		score: Float!
	}
`
